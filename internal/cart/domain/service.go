package domain

import (
	"context"
	"errors"

	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
)

type Service interface {
	Create(ctx context.Context) (*Response, error)
	Get(ctx context.Context, cartID string) (*Response, error)
	AddItem(ctx context.Context, cartID, productID string) (*Response, error)
	RemoveItem(ctx context.Context, cartID, productID string) (*Response, error)
	UpdateQuantity(ctx context.Context, cartID, productID string, delta int) (*Response, error)
	Clear(ctx context.Context, cartID string) (*Response, error)
}

type LineResponse struct {
	Product          catalogdomain.Response `json:"product"`
	Quantity         int                    `json:"quantity"`
	LineTotalCents   int64                  `json:"line_total_cents"`
	DisplayLineTotal string                 `json:"display_line_total"`
}

type Response struct {
	ID              string         `json:"id"`
	Lines           []LineResponse `json:"lines"`
	SubtotalCents   int64          `json:"subtotal_cents"`
	DisplaySubtotal string         `json:"display_subtotal"`
	ItemCount       int            `json:"item_count"`
	LineCount       int            `json:"line_count"`
}

var (
	ErrCartNotFound = errors.New("cart_not_found")
	ErrInvalidID    = errors.New("invalid_cart_id")
)
