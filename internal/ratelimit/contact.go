package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/octolab/storefront/internal/config"
	redis "github.com/redis/go-redis/v9"
)

const (
	keyContactSubmit = "contact:submit:ip:%s"
	keySessionSweep  = "session:sweep:lock"
)

// ContactLimiter throttles contact-form submissions per client IP. It is nil
// (fully open) when rate limiting is disabled in config.
type ContactLimiter struct {
	enabled bool

	bucket *TokenBucket
	locker *Locker

	rate  float64
	burst int
}

func NewContactLimiter(cfg config.Config) (*ContactLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.ContactRate <= 0 || limitCfg.ContactBurst <= 0 {
		return nil, errors.New("contact rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})

	return &ContactLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		locker:  NewLocker(client),
		rate:    limitCfg.ContactRate,
		burst:   limitCfg.ContactBurst,
	}, nil
}

// Allow reports whether the client IP may submit now.
func (l *ContactLimiter) Allow(ctx context.Context, clientIP string) (*RateLimitResult, error) {
	if l == nil || !l.enabled {
		return &RateLimitResult{Allowed: true}, nil
	}
	key := fmt.Sprintf(keyContactSubmit, strings.TrimSpace(clientIP))
	return l.bucket.Allow(ctx, key, l.rate, l.burst)
}

// TrySweepLock acquires the cross-instance lock for the expired-session
// sweeper; only one instance sweeps at a time.
func (l *ContactLimiter) TrySweepLock(ctx context.Context, ttl time.Duration) (string, bool, error) {
	if l == nil || !l.enabled {
		return "", true, nil
	}
	return l.locker.TryLock(ctx, keySessionSweep, ttl)
}

func (l *ContactLimiter) ReleaseSweepLock(ctx context.Context, token string) error {
	if l == nil || !l.enabled {
		return nil
	}
	return l.locker.Release(ctx, keySessionSweep, token)
}
