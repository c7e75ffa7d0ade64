package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, session *Session) error
	FindByToken(ctx context.Context, db *gorm.DB, token string) (*Session, error)
	Update(ctx context.Context, db *gorm.DB, session *Session) error
	DeleteExpired(ctx context.Context, db *gorm.DB, before time.Time) (int64, error)
}
