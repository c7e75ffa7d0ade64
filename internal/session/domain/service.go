package domain

import (
	"context"
	"errors"
	"time"

	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
)

type Service interface {
	// Ensure resolves an existing session by token, or creates a fresh one
	// (with its own cart) when the token is unknown or expired.
	Ensure(ctx context.Context, token string) (*Response, error)
	NavigateTo(ctx context.Context, token, view string) (*Response, error)
	SelectProduct(ctx context.Context, token, slug string) (*Response, error)
	OpenCart(ctx context.Context, token string) (*Response, error)
	CloseCart(ctx context.Context, token string) (*Response, error)
}

type Response struct {
	Token               string                  `json:"-"`
	CartID              string                  `json:"cart_id"`
	CurrentView         string                  `json:"current_view"`
	SelectedProductSlug *string                 `json:"selected_product_slug,omitempty"`
	SelectedProduct     *catalogdomain.Response `json:"selected_product,omitempty"`
	CartOpen            bool                    `json:"cart_open"`
	ExpiresAt           time.Time               `json:"expires_at"`
}

var (
	ErrSessionNotFound = errors.New("session_not_found")
	ErrInvalidView     = errors.New("invalid_view")
	// ErrProductRequired guards the product view: it can only be entered
	// through SelectProduct, so a product-detail state with no product
	// cannot exist.
	ErrProductRequired = errors.New("product_required")
)
