package repository

import (
	"context"
	"errors"

	"github.com/octolab/storefront/internal/contact/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, submission *domain.Submission) error {
	return db.WithContext(ctx).Create(submission).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Submission, error) {
	var s domain.Submission
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, submission *domain.Submission) error {
	if submission == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("id = ?", submission.ID).
		Updates(map[string]any{
			"status":         submission.Status,
			"failure_reason": submission.FailureReason,
			"updated_at":     submission.UpdatedAt,
		}).Error
}
