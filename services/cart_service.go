package services

import (
	"errors"

	"github.com/pratik117-dev/restaurant-site-backend/entity"
	"github.com/pratik117-dev/restaurant-site-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository // validate items before they enter the cart
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"min=0"`
}

// Get returns the cart rows plus the derived total, priced off the
// live catalog.
func (s *CartService) Get(userID uint) ([]entity.CartItem, decimal.Decimal, error) {
	items, err := s.CartRepo.ItemsForUser(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.MenuItem.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return items, total, nil
}

// Add puts qty of a menu item in the cart; a second add of the same
// item merges into the existing row.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	if _, err := s.MenuRepo.FindByID(in.MenuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, userID, in.MenuItemID, in.Quantity)
	})
}

// UpdateQty changes a row's quantity; qty <= 0 removes the row. An id
// outside the caller's cart answers not-found.
func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}
