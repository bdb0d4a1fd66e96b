package entity

import (
	"gorm.io/gorm"
)

// One row per (user, item); adding the same item again increments
// Quantity instead of inserting a second row.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
}
