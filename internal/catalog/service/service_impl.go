package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/octolab/storefront/internal/catalog/domain"
	"github.com/octolab/storefront/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Repo       domain.Repository
	Storefront *config.StorefrontConfigHolder
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	repo       domain.Repository
	storefront *config.StorefrontConfigHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("catalog.service"),
		repo:       p.Repo,
		storefront: p.Storefront,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, s.toResponse(&item))
	}
	return resp, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Response, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.ErrInvalidSlug
	}

	item, err := s.repo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := s.toResponse(item)
	return &resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := s.toResponse(item)
	return &resp, nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx, s.db)
}

func (s *Service) toResponse(p *domain.Product) domain.Response {
	symbol := "$"
	if s.storefront != nil {
		symbol = s.storefront.Get().CurrencySymbol
	}

	return domain.Response{
		ID:           snowflake.ID(p.ID).String(),
		Slug:         p.Slug,
		Name:         p.Name,
		Subtitle:     p.Subtitle,
		PriceCents:   p.PriceCents,
		DisplayPrice: FormatPrice(p.PriceCents, symbol),
		Volume:       p.Volume,
		Dosage:       p.Dosage,
		Category:     p.Category,
		Image:        p.Image,
		Description:  p.Description,
		COAAvailable: p.COAAvailable,
		InStock:      p.InStock,
		Tags:         []string(p.Tags),
	}
}

// FormatPrice renders a cent amount as a currency string, e.g. "$55.00".
func FormatPrice(cents int64, symbol string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, cents/100, cents%100)
}
