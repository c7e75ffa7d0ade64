package repository

import (
	"context"
	"errors"
	"time"

	"github.com/octolab/storefront/internal/cart/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CreateCart(ctx context.Context, db *gorm.DB, cart *domain.Cart) error {
	return db.WithContext(ctx).Create(cart).Error
}

func (r *repo) FindCart(ctx context.Context, db *gorm.DB, id int64) (*domain.Cart, error) {
	var c domain.Cart
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindLines(ctx context.Context, db *gorm.DB, cartID int64) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	err := db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC, id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *repo) FindLine(ctx context.Context, db *gorm.DB, cartID, productID int64) (*domain.CartLine, error) {
	var line domain.CartLine
	err := db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *repo) CreateLine(ctx context.Context, db *gorm.DB, line *domain.CartLine) error {
	return db.WithContext(ctx).Create(line).Error
}

func (r *repo) UpdateLine(ctx context.Context, db *gorm.DB, line *domain.CartLine) error {
	if line == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).
		Model(&domain.CartLine{}).
		Where("id = ?", line.ID).
		Updates(map[string]any{
			"quantity":   line.Quantity,
			"updated_at": line.UpdatedAt,
		}).Error
}

func (r *repo) DeleteLine(ctx context.Context, db *gorm.DB, cartID, productID int64) error {
	return db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&domain.CartLine{}).Error
}

func (r *repo) DeleteLines(ctx context.Context, db *gorm.DB, cartID int64) error {
	return db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&domain.CartLine{}).Error
}

func (r *repo) TouchCart(ctx context.Context, db *gorm.DB, cartID int64) error {
	return db.WithContext(ctx).
		Model(&domain.Cart{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now().UTC()).Error
}
