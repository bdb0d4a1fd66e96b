package repository

import (
	"errors"

	"github.com/pratik117-dev/restaurant-site-backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ItemsForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id").
		Find(&items).Error
	return items, err
}

// UpsertItem merges with the existing (user, item) row if there is one,
// otherwise inserts.
func (r *CartRepository) UpsertItem(tx *gorm.DB, userID, menuItemID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row := entity.CartItem{UserID: userID, MenuItemID: menuItemID, Quantity: qty}
	return tx.Create(&row).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Removals are hard deletes; a lingering soft-deleted row would trip
// the unique (user, item) index on the next add.
func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	res := tx.Unscoped().Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entity.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
