package sweeper

import (
	"context"
	"time"

	"github.com/octolab/storefront/internal/clock"
	"github.com/octolab/storefront/internal/ratelimit"
	"github.com/octolab/storefront/internal/session/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sweepInterval = 15 * time.Minute
	lockTTL       = 5 * time.Minute
)

// Sweeper periodically removes expired sessions. When several replicas
// run against the same database, a redis lock keeps the sweep to one
// replica per interval.
type Sweeper struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	limiter *ratelimit.ContactLimiter

	stop chan struct{}
	done chan struct{}
}

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Repo    domain.Repository
	Limiter *ratelimit.ContactLimiter `optional:"true"`
}

func New(p Params) *Sweeper {
	return &Sweeper{
		db:      p.DB,
		log:     p.Log.Named("session.sweeper"),
		clock:   p.Clock,
		repo:    p.Repo,
		limiter: p.Limiter,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	go s.loop()
}

func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sweeper) loop() {
	defer close(s.done)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep(context.Background())
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if s.limiter != nil {
		token, acquired, err := s.limiter.TrySweepLock(ctx, lockTTL)
		if err != nil {
			s.log.Warn("failed to acquire sweep lock", zap.Error(err))
			return
		}
		if !acquired {
			return
		}
		defer func() {
			if err := s.limiter.ReleaseSweepLock(ctx, token); err != nil {
				s.log.Warn("failed to release sweep lock", zap.Error(err))
			}
		}()
	}

	deleted, err := s.repo.DeleteExpired(ctx, s.db, s.clock.Now())
	if err != nil {
		s.log.Error("failed to delete expired sessions", zap.Error(err))
		return
	}
	if deleted > 0 {
		s.log.Info("expired sessions removed", zap.Int64("count", deleted))
	}
}

var Module = fx.Module("session.sweeper",
	fx.Provide(New),
	fx.Invoke(registerHooks),
)

func registerHooks(lc fx.Lifecycle, s *Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop()
			return nil
		},
	})
}
