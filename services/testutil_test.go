package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/pratik117-dev/restaurant-site-backend/entity"
	"github.com/pratik117-dev/restaurant-site-backend/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{}, &entity.Otp{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.DeliveryStatus{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// stubMailer records every code instead of talking SMTP.
type stubMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	To   string
	Code string
}

func (m *stubMailer) SendOTP(to, code string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Code: code})
	return nil
}

func (m *stubMailer) lastCode() string {
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1].Code
}

func seedUser(t *testing.T, db *gorm.DB, email, name, password string, active, admin bool) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &entity.User{
		Email:    email,
		Name:     name,
		Password: string(hash),
		IsActive: active,
		IsAdmin:  admin,
		IsStaff:  admin,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, price, category string) *entity.MenuItem {
	t.Helper()

	item := &entity.MenuItem{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Category:    category,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func newAuthService(db *gorm.DB, mail *stubMailer) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewOtpRepository(db),
		mail,
		"test-secret",
		time.Hour,
	)
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewCartRepository(db),
	)
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		db,
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
	)
}
