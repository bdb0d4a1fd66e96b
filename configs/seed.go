package configs

import (
	"log"
	"strings"

	"github.com/pratik117-dev/restaurant-site-backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first administrator account from the
// environment. Admins are born active, they never go through OTP.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}
	email = strings.ToLower(email)

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Name:     "Admin",
		Password: string(hash),
		IsAdmin:  true,
		IsStaff:  true,
		IsActive: true,
	}
	return db.Create(&admin).Error
}

// SeedDeliveryStatus makes sure the singleton toggle row exists.
func SeedDeliveryStatus() error {
	db := DB()
	ds := entity.DeliveryStatus{ID: entity.DeliveryStatusID}
	return db.Where(entity.DeliveryStatus{ID: entity.DeliveryStatusID}).
		Attrs(entity.DeliveryStatus{Available: true}).
		FirstOrCreate(&ds).Error
}
