package domain

import (
	"strings"
	"time"
)

// View enumerates the storefront pages a session can be on. The cart is an
// overlay flag, never a view of its own.
const (
	ViewHome    = "home"
	ViewCatalog = "catalog"
	ViewProduct = "product"
	ViewAbout   = "about"
	ViewInfo    = "info"
	ViewContact = "contact"
)

// ParseView normalizes and validates a view name.
func ParseView(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ViewHome:
		return ViewHome, true
	case ViewCatalog, "shop":
		return ViewCatalog, true
	case ViewProduct:
		return ViewProduct, true
	case ViewAbout:
		return ViewAbout, true
	case ViewInfo:
		return ViewInfo, true
	case ViewContact:
		return ViewContact, true
	default:
		return "", false
	}
}

// Session is one visitor's navigation and cart binding. The session row is the
// single writer for its cart; mutations are written immediately
// (last-writer-wins, per the one-writer model).
type Session struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	Token               string    `json:"token" gorm:"type:text;not null;uniqueIndex:ux_sessions_token"`
	CartID              int64     `json:"cart_id" gorm:"not null;index"`
	CurrentView         string    `json:"current_view" gorm:"type:text;not null"`
	SelectedProductSlug *string   `json:"selected_product_slug,omitempty" gorm:"type:text"`
	CartOpen            bool      `json:"cart_open" gorm:"not null;default:false"`
	CreatedAt           time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	ExpiresAt           time.Time `json:"expires_at" gorm:"not null;index"`
}

func (Session) TableName() string { return "sessions" }

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
