package domain

import "time"

// Guide is one content-hub article teaser. Seeded statically, read-only.
type Guide struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"type:text;not null;uniqueIndex:ux_guides_slug"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Category  string    `json:"category" gorm:"type:text"`
	ReadTime  string    `json:"read_time" gorm:"type:text"`
	Image     string    `json:"image" gorm:"type:text"`
	Position  int       `json:"position" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Guide) TableName() string { return "guides" }
