package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLine is the snapshot of one ordered item, captured at order
// creation. Name and UnitPrice are copied from the menu item so later
// catalog edits never touch historical orders; reads serve the snapshot
// as-is, there is no merge against the live catalog.
type OrderLine struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint            `json:"menuItemId"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Quantity   int             `gorm:"not null;default:1" json:"quantity"`
}
