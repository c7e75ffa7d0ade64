package repository

import (
	"context"
	"errors"
	"time"

	"github.com/octolab/storefront/internal/session/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	return db.WithContext(ctx).Create(session).Error
}

func (r *repo) FindByToken(ctx context.Context, db *gorm.DB, token string) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).
		Where("token = ?", token).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	if session == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ?", session.ID).
		Updates(map[string]any{
			"current_view":          session.CurrentView,
			"selected_product_slug": session.SelectedProductSlug,
			"cart_open":             session.CartOpen,
			"updated_at":            session.UpdatedAt,
			"expires_at":            session.ExpiresAt,
		}).Error
}

func (r *repo) DeleteExpired(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}
