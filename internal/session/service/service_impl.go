package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/octolab/storefront/internal/cache"
	cartdomain "github.com/octolab/storefront/internal/cart/domain"
	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
	"github.com/octolab/storefront/internal/clock"
	"github.com/octolab/storefront/internal/config"
	"github.com/octolab/storefront/internal/session/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sessionCacheTTL = 30 * time.Second

type Params struct {
	fx.In

	Cfg     config.Config
	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    domain.Repository
	Cart    cartdomain.Service
	Catalog catalogdomain.Service
}

type Service struct {
	cfg     config.Config
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    domain.Repository
	cart    cartdomain.Service
	catalog catalogdomain.Service
	byToken cache.Cache[string, domain.Session]
}

func New(p Params) domain.Service {
	return &Service{
		cfg:     p.Cfg,
		db:      p.DB,
		log:     p.Log.Named("session.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		cart:    p.Cart,
		catalog: p.Catalog,
		byToken: cache.NewTTLCache[string, domain.Session](),
	}
}

func (s *Service) Ensure(ctx context.Context, token string) (*domain.Response, error) {
	token = strings.TrimSpace(token)
	if token != "" {
		session, err := s.lookup(ctx, token)
		if err != nil {
			return nil, err
		}
		if session != nil && !session.Expired(s.clock.Now()) {
			return s.toResponse(ctx, session)
		}
	}

	return s.create(ctx)
}

func (s *Service) NavigateTo(ctx context.Context, token, view string) (*domain.Response, error) {
	normalized, ok := domain.ParseView(view)
	if !ok {
		return nil, domain.ErrInvalidView
	}
	// The product view is only reachable through SelectProduct, so a
	// product-detail state without a product cannot be constructed.
	if normalized == domain.ViewProduct {
		return nil, domain.ErrProductRequired
	}

	return s.mutate(ctx, token, func(session *domain.Session) error {
		session.CurrentView = normalized
		session.CartOpen = false
		return nil
	})
}

func (s *Service) SelectProduct(ctx context.Context, token, slug string) (*domain.Response, error) {
	product, err := s.catalog.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, token, func(session *domain.Session) error {
		productSlug := product.Slug
		session.SelectedProductSlug = &productSlug
		session.CurrentView = domain.ViewProduct
		session.CartOpen = false
		return nil
	})
}

func (s *Service) OpenCart(ctx context.Context, token string) (*domain.Response, error) {
	return s.mutate(ctx, token, func(session *domain.Session) error {
		session.CartOpen = true
		return nil
	})
}

func (s *Service) CloseCart(ctx context.Context, token string) (*domain.Response, error) {
	return s.mutate(ctx, token, func(session *domain.Session) error {
		session.CartOpen = false
		return nil
	})
}

func (s *Service) create(ctx context.Context) (*domain.Response, error) {
	cartResp, err := s.cart.Create(ctx)
	if err != nil {
		return nil, err
	}
	cartID, err := snowflake.ParseString(cartResp.ID)
	if err != nil {
		return nil, cartdomain.ErrInvalidID
	}

	now := s.clock.Now()
	session := &domain.Session{
		ID:          s.genID.Generate().Int64(),
		Token:       uuid.NewString(),
		CartID:      cartID.Int64(),
		CurrentView: domain.ViewHome,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(s.cfg.SessionTTL),
	}
	if err := s.repo.Create(ctx, s.db, session); err != nil {
		return nil, err
	}

	s.byToken.Set(session.Token, *session, sessionCacheTTL)
	return s.toResponse(ctx, session)
}

func (s *Service) mutate(ctx context.Context, token string, apply func(*domain.Session) error) (*domain.Response, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if session == nil || session.Expired(now) {
		return nil, domain.ErrSessionNotFound
	}

	if err := apply(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(s.cfg.SessionTTL)

	if err := s.repo.Update(ctx, s.db, session); err != nil {
		return nil, err
	}
	s.byToken.Set(session.Token, *session, sessionCacheTTL)

	return s.toResponse(ctx, session)
}

func (s *Service) lookup(ctx context.Context, token string) (*domain.Session, error) {
	if cached, ok := s.byToken.Get(token); ok {
		session := cached
		return &session, nil
	}

	session, err := s.repo.FindByToken(ctx, s.db, token)
	if err != nil {
		return nil, err
	}
	if session != nil {
		s.byToken.Set(token, *session, sessionCacheTTL)
	}
	return session, nil
}

func (s *Service) toResponse(ctx context.Context, session *domain.Session) (*domain.Response, error) {
	resp := &domain.Response{
		Token:               session.Token,
		CartID:              snowflake.ID(session.CartID).String(),
		CurrentView:         session.CurrentView,
		SelectedProductSlug: session.SelectedProductSlug,
		CartOpen:            session.CartOpen,
		ExpiresAt:           session.ExpiresAt,
	}

	// The selected product persists across navigation, but its payload is only
	// rendered on the product view.
	if session.CurrentView == domain.ViewProduct && session.SelectedProductSlug != nil {
		product, err := s.catalog.GetBySlug(ctx, *session.SelectedProductSlug)
		if err != nil {
			return nil, err
		}
		resp.SelectedProduct = product
	}

	return resp, nil
}
