package repository

import (
	"github.com/pratik117-dev/restaurant-site-backend/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users table, nothing else.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountActiveByEmail only counts activated accounts; a pending
// registration is allowed to register again.
func (r *UserRepository) CountActiveByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).
		Where("email = ? AND is_active = ?", email, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Activate flips the account live after OTP verification.
func (r *UserRepository) Activate(userID uint) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("is_active", true).Error
}
