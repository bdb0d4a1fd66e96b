package entity

import "time"

// DeliveryStatusID is the fixed primary key of the only row; every read
// and write goes through it, so the table can never grow a second row.
const DeliveryStatusID uint = 1

// DeliveryStatus is the global "are we taking orders" toggle.
type DeliveryStatus struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Available bool      `gorm:"not null;default:true" json:"available"`
	UpdatedAt time.Time `json:"updatedAt"`
}
