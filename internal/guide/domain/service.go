package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Guide, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Guide, error)
}

type Service interface {
	List(ctx context.Context) ([]Response, error)
	GetBySlug(ctx context.Context, slug string) (*Response, error)
}

type Response struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	ReadTime string `json:"read_time"`
	Image    string `json:"image"`
}

var (
	ErrNotFound    = errors.New("guide_not_found")
	ErrInvalidSlug = errors.New("invalid_guide_slug")
)
