package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Password string `json:"-"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`
	IsStaff  bool   `gorm:"not null;default:false" json:"-"`
	IsActive bool   `gorm:"not null;default:false" json:"-"`

	// Relations, preload only when needed
	CartItems []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
