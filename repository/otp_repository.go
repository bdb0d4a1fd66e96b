package repository

import (
	"github.com/pratik117-dev/restaurant-site-backend/entity"

	"gorm.io/gorm"
)

type OtpRepository struct {
	DB *gorm.DB
}

func NewOtpRepository(db *gorm.DB) *OtpRepository {
	return &OtpRepository{DB: db}
}

// Replace drops whatever code was live for the email and stores the new
// one. Issuance always goes through here, so the unique index on email
// never trips.
func (r *OtpRepository) Replace(email, code string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("email = ?", email).Delete(&entity.Otp{}).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Otp{Email: email, Code: code}).Error
	})
}

func (r *OtpRepository) Find(email, code string) (*entity.Otp, error) {
	var otp entity.Otp
	if err := r.DB.Where("email = ? AND code = ?", email, code).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OtpRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Otp{}, id).Error
}
