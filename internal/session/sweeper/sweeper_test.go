package sweeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/octolab/storefront/internal/clock"
	"github.com/octolab/storefront/internal/session/domain"
	"github.com/octolab/storefront/internal/session/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestSweepRemovesOnlyExpiredSessions(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Session{}))

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := repository.Provide()
	ctx := context.Background()

	expired := &domain.Session{ID: 1, Token: "expired", CartID: 1, CurrentView: domain.ViewHome, ExpiresAt: now.Add(-time.Hour)}
	live := &domain.Session{ID: 2, Token: "live", CartID: 2, CurrentView: domain.ViewHome, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, db, expired))
	require.NoError(t, repo.Create(ctx, db, live))

	s := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(now),
		Repo:  repo,
	})
	s.sweep(ctx)

	var count int64
	require.NoError(t, db.Model(&domain.Session{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	remaining, err := repo.FindByToken(ctx, db, "live")
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}
