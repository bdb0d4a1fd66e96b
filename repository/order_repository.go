package repository

import (
	"github.com/pratik117-dev/restaurant-site-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Lines").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByIDForUser(id, userID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Lines").
		Where("id = ? AND user_id = ?", id, userID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Lines").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// FindAllExceptCancelled feeds the admin dashboard list.
func (r *OrderRepository) FindAllExceptCancelled() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Lines").Preload("User").
		Where("status <> ?", entity.StatusCancelled).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// FindAll returns every order, cancelled included; the CSV exporter
// wants the full ledger.
func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Lines").Preload("User").
		Order("id").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Update(orderID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// Delete removes the order for good, lines included.
func (r *OrderRepository) Delete(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Order{}, orderID).Error
	})
}
