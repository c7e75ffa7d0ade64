package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateCart(ctx context.Context, db *gorm.DB, cart *Cart) error
	FindCart(ctx context.Context, db *gorm.DB, id int64) (*Cart, error)
	FindLines(ctx context.Context, db *gorm.DB, cartID int64) ([]CartLine, error)
	FindLine(ctx context.Context, db *gorm.DB, cartID, productID int64) (*CartLine, error)
	CreateLine(ctx context.Context, db *gorm.DB, line *CartLine) error
	UpdateLine(ctx context.Context, db *gorm.DB, line *CartLine) error
	DeleteLine(ctx context.Context, db *gorm.DB, cartID, productID int64) error
	DeleteLines(ctx context.Context, db *gorm.DB, cartID int64) error
	TouchCart(ctx context.Context, db *gorm.DB, cartID int64) error
}
