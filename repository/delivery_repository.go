package repository

import (
	"github.com/pratik117-dev/restaurant-site-backend/entity"

	"gorm.io/gorm"
)

type DeliveryRepository struct{ DB *gorm.DB }

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

// GetOrCreate reads the singleton row, creating it available=true on
// first access. All access pins id=1 so a second row cannot appear.
func (r *DeliveryRepository) GetOrCreate() (*entity.DeliveryStatus, error) {
	ds := entity.DeliveryStatus{ID: entity.DeliveryStatusID}
	err := r.DB.Where(entity.DeliveryStatus{ID: entity.DeliveryStatusID}).
		Attrs(entity.DeliveryStatus{Available: true}).
		FirstOrCreate(&ds).Error
	if err != nil {
		return nil, err
	}
	return &ds, nil
}

func (r *DeliveryRepository) SetAvailable(available bool) error {
	return r.DB.Model(&entity.DeliveryStatus{}).
		Where("id = ?", entity.DeliveryStatusID).
		Update("available", available).Error
}
