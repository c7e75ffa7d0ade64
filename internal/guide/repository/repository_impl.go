package repository

import (
	"context"
	"errors"

	"github.com/octolab/storefront/internal/guide/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Guide, error) {
	var items []domain.Guide
	err := db.WithContext(ctx).
		Model(&domain.Guide{}).
		Order("position ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Guide, error) {
	var g domain.Guide
	err := db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}
