package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/octolab/storefront/internal/cart/domain"
	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
	catalogservice "github.com/octolab/storefront/internal/catalog/service"
	"github.com/octolab/storefront/internal/clock"
	"github.com/octolab/storefront/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Repo       domain.Repository
	Catalog    catalogdomain.Service
	Storefront *config.StorefrontConfigHolder
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	repo       domain.Repository
	catalog    catalogdomain.Service
	storefront *config.StorefrontConfigHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("cart.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		catalog:    p.Catalog,
		storefront: p.Storefront,
	}
}

func (s *Service) Create(ctx context.Context) (*domain.Response, error) {
	now := s.clock.Now()
	cart := &domain.Cart{
		ID:        s.genID.Generate().Int64(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateCart(ctx, s.db, cart); err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, cart.ID)
}

func (s *Service) Get(ctx context.Context, cartID string) (*domain.Response, error) {
	id, err := parseID(cartID)
	if err != nil {
		return nil, err
	}

	cart, err := s.repo.FindCart(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrCartNotFound
	}
	return s.buildResponse(ctx, id)
}

// AddItem inserts a new line with quantity 1, or increments the existing line
// for the same product. Out-of-stock products are not rejected here; the
// in_stock flag is advisory and surfaces on the product payload.
func (s *Service) AddItem(ctx context.Context, cartID, productID string) (*domain.Response, error) {
	id, err := parseID(cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	productIDValue, err := snowflake.ParseString(product.ID)
	if err != nil {
		return nil, catalogdomain.ErrInvalidID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.repo.FindCart(ctx, tx, id)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.ErrCartNotFound
		}

		now := s.clock.Now()
		line, err := s.repo.FindLine(ctx, tx, id, productIDValue.Int64())
		if err != nil {
			return err
		}
		if line != nil {
			line.Quantity++
			line.UpdatedAt = now
			if err := s.repo.UpdateLine(ctx, tx, line); err != nil {
				return err
			}
		} else {
			line = &domain.CartLine{
				ID:        s.genID.Generate().Int64(),
				CartID:    id,
				ProductID: productIDValue.Int64(),
				Quantity:  1,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.repo.CreateLine(ctx, tx, line); err != nil {
				return err
			}
		}
		return s.repo.TouchCart(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, id)
}

// RemoveItem deletes the matching line. Removing an absent line is a no-op.
func (s *Service) RemoveItem(ctx context.Context, cartID, productID string) (*domain.Response, error) {
	id, err := parseID(cartID)
	if err != nil {
		return nil, err
	}
	productIDValue, err := snowflake.ParseString(strings.TrimSpace(productID))
	if err != nil {
		return nil, catalogdomain.ErrInvalidID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.repo.FindCart(ctx, tx, id)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.ErrCartNotFound
		}
		if err := s.repo.DeleteLine(ctx, tx, id, productIDValue.Int64()); err != nil {
			return err
		}
		return s.repo.TouchCart(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, id)
}

// UpdateQuantity applies a delta to an existing line, clamping at 1. A delta
// that would drop the quantity below 1 is a silent floor, not an error, and an
// absent line is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, cartID, productID string, delta int) (*domain.Response, error) {
	id, err := parseID(cartID)
	if err != nil {
		return nil, err
	}
	productIDValue, err := snowflake.ParseString(strings.TrimSpace(productID))
	if err != nil {
		return nil, catalogdomain.ErrInvalidID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.repo.FindCart(ctx, tx, id)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.ErrCartNotFound
		}

		line, err := s.repo.FindLine(ctx, tx, id, productIDValue.Int64())
		if err != nil {
			return err
		}
		if line == nil {
			return nil
		}

		quantity := line.Quantity + delta
		if quantity < 1 {
			quantity = 1
		}
		if quantity == line.Quantity {
			return nil
		}

		line.Quantity = quantity
		line.UpdatedAt = s.clock.Now()
		if err := s.repo.UpdateLine(ctx, tx, line); err != nil {
			return err
		}
		return s.repo.TouchCart(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, id)
}

func (s *Service) Clear(ctx context.Context, cartID string) (*domain.Response, error) {
	id, err := parseID(cartID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.repo.FindCart(ctx, tx, id)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.ErrCartNotFound
		}
		if err := s.repo.DeleteLines(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.TouchCart(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, id)
}

func (s *Service) buildResponse(ctx context.Context, cartID int64) (*domain.Response, error) {
	lines, err := s.repo.FindLines(ctx, s.db, cartID)
	if err != nil {
		return nil, err
	}

	symbol := "$"
	if s.storefront != nil {
		symbol = s.storefront.Get().CurrencySymbol
	}

	resp := &domain.Response{
		ID:    snowflake.ID(cartID).String(),
		Lines: make([]domain.LineResponse, 0, len(lines)),
	}
	for _, line := range lines {
		product, err := s.catalog.GetByID(ctx, snowflake.ID(line.ProductID).String())
		if err != nil {
			return nil, err
		}
		lineTotal := product.PriceCents * int64(line.Quantity)
		resp.Lines = append(resp.Lines, domain.LineResponse{
			Product:          *product,
			Quantity:         line.Quantity,
			LineTotalCents:   lineTotal,
			DisplayLineTotal: catalogservice.FormatPrice(lineTotal, symbol),
		})
		resp.SubtotalCents += lineTotal
		resp.ItemCount += line.Quantity
	}
	resp.LineCount = len(lines)
	resp.DisplaySubtotal = catalogservice.FormatPrice(resp.SubtotalCents, symbol)

	return resp, nil
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id.Int64(), nil
}
