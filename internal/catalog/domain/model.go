package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Product is one catalog entry. Rows are written once by the seeder and never
// mutated for the lifetime of the process.
type Product struct {
	ID           int64                       `json:"id" gorm:"primaryKey"`
	Slug         string                      `json:"slug" gorm:"type:text;not null;uniqueIndex:ux_products_slug"`
	Name         string                      `json:"name" gorm:"type:text;not null"`
	Subtitle     string                      `json:"subtitle" gorm:"type:text"`
	PriceCents   int64                       `json:"price_cents" gorm:"not null;check:price_cents >= 0"`
	Volume       string                      `json:"volume" gorm:"type:text"`
	Dosage       string                      `json:"dosage" gorm:"type:text"`
	Category     string                      `json:"category" gorm:"type:text;index"`
	Image        string                      `json:"image" gorm:"type:text"`
	Description  string                      `json:"description" gorm:"type:text"`
	COAAvailable bool                        `json:"coa_available" gorm:"not null;default:false"`
	InStock      bool                        `json:"in_stock" gorm:"not null;default:true"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	Position     int                         `json:"position" gorm:"not null;index"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                   `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }
