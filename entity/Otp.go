package entity

import (
	"time"

	"gorm.io/gorm"
)

// OtpTTL is how long a code stays valid after issuance.
const OtpTTL = 10 * time.Minute

// Otp holds the one pending verification code for an email address.
// The unique index on Email guarantees at most one live code per address;
// a resend deletes the old row before inserting the new one.
type Otp struct {
	gorm.Model
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Code  string `gorm:"size:6;not null" json:"-"`
}

func (o *Otp) Expired(now time.Time) bool {
	return now.After(o.CreatedAt.Add(OtpTTL))
}
