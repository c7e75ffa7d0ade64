package seed

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
	guidedomain "github.com/octolab/storefront/internal/guide/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalogdomain.Product{}, &guidedomain.Guide{}))
	return db
}

func TestEnsureCatalogSeedsOnce(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, EnsureCatalog(db))

	var productCount, guideCount int64
	require.NoError(t, db.Model(&catalogdomain.Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&guidedomain.Guide{}).Count(&guideCount).Error)
	assert.Equal(t, int64(4), productCount)
	assert.Equal(t, int64(3), guideCount)
}

func TestEnsureCatalogIsIdempotent(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, EnsureCatalog(db))

	var before []catalogdomain.Product
	require.NoError(t, db.Order("position ASC").Find(&before).Error)

	require.NoError(t, EnsureCatalog(db))

	var after []catalogdomain.Product
	require.NoError(t, db.Order("position ASC").Find(&after).Error)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Slug, after[i].Slug)
	}
}

func TestEnsureCatalogRequiresDatabase(t *testing.T) {
	assert.Error(t, EnsureCatalog(nil))
}
