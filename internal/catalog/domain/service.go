package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]Response, error)
	GetBySlug(ctx context.Context, slug string) (*Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Categories(ctx context.Context) ([]string, error)
}

type Response struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Subtitle     string   `json:"subtitle"`
	PriceCents   int64    `json:"price_cents"`
	DisplayPrice string   `json:"display_price"`
	Volume       string   `json:"volume"`
	Dosage       string   `json:"dosage"`
	Category     string   `json:"category"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	COAAvailable bool     `json:"coa_available"`
	InStock      bool     `json:"in_stock"`
	Tags         []string `json:"tags"`
}

var (
	ErrNotFound    = errors.New("product_not_found")
	ErrInvalidSlug = errors.New("invalid_slug")
	ErrInvalidID   = errors.New("invalid_id")
)
