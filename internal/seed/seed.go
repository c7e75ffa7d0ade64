package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
	guidedomain "github.com/octolab/storefront/internal/guide/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnsureCatalog seeds the static product and guide datasets on startup. It is
// idempotent: rows are only written when the tables are empty, so a restart
// never duplicates or reorders the catalog.
func EnsureCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureProductsTx(ctx, tx, node); err != nil {
			return err
		}
		return ensureGuidesTx(ctx, tx, node)
	})
}

func ensureProductsTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&catalogdomain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i, row := range products {
		p := catalogdomain.Product{
			ID:           node.Generate().Int64(),
			Slug:         slug.Make(row.name),
			Name:         row.name,
			Subtitle:     row.subtitle,
			PriceCents:   row.priceCents,
			Volume:       row.volume,
			Dosage:       row.dosage,
			Category:     row.category,
			Image:        row.image,
			Description:  row.description,
			COAAvailable: row.coaAvailable,
			InStock:      row.inStock,
			Tags:         datatypes.NewJSONSlice(row.tags),
			Position:     i,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.WithContext(ctx).Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureGuidesTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&guidedomain.Guide{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i, row := range guides {
		g := guidedomain.Guide{
			ID:        node.Generate().Int64(),
			Slug:      slug.Make(row.title),
			Title:     row.title,
			Category:  row.category,
			ReadTime:  row.readTime,
			Image:     row.image,
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.WithContext(ctx).Create(&g).Error; err != nil {
			return err
		}
	}
	return nil
}
