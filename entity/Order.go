package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"` // preload for admin views and CSV export

	Status     string          `gorm:"not null;default:PENDING" json:"status"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	Phone      string          `json:"phone"`
	Location   string          `json:"location"`

	Lines []OrderLine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
