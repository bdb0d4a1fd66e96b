package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CategoryChicken = "CHICKEN"
	CategoryVeg     = "VEG"
	CategoryDrinks  = "DRINKS"
)

func IsValidCategory(c string) bool {
	switch c {
	case CategoryChicken, CategoryVeg, CategoryDrinks:
		return true
	}
	return false
}

type MenuItem struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"not null;default:VEG" json:"category"`
	ImageURL    string          `json:"imageUrl"`

	CartItems []CartItem `json:"-"`
}
