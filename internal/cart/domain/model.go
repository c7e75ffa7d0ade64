package domain

import "time"

type Cart struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Cart) TableName() string { return "carts" }

// CartLine holds one distinct product and its quantity. The unique index keeps
// at most one line per product within a cart; repeated adds increment quantity.
type CartLine struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CartID    int64     `json:"cart_id" gorm:"not null;uniqueIndex:ux_cart_lines_cart_product,priority:1"`
	ProductID int64     `json:"product_id" gorm:"not null;uniqueIndex:ux_cart_lines_cart_product,priority:2"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity >= 1"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CartLine) TableName() string { return "cart_lines" }
