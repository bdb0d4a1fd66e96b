package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pratik117-dev/restaurant-site-backend/entity"
	"github.com/pratik117-dev/restaurant-site-backend/pkg/mailer"
	"github.com/pratik117-dev/restaurant-site-backend/repository"
	"github.com/pratik117-dev/restaurant-site-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns registration, OTP verification and login.
type AuthService struct {
	userRepo  *repository.UserRepository
	otpRepo   *repository.OtpRepository
	mail      mailer.Mailer
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, otps *repository.OtpRepository, mail mailer.Mailer, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  users,
		otpRepo:   otps,
		mail:      mail,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func generateCode() string {
	return fmt.Sprintf("%06d", rand.Intn(900000)+100000)
}

// Register creates (or refreshes) a pending account and emails a fresh
// 6-digit code. Only an *active* account blocks re-registration; a
// pending one just gets its name/password replaced and a new code.
// If the mail send fails the whole request fails; the already written
// OTP row is left to expire on its own, there is no cleanup job.
func (s *AuthService) Register(email, name, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountActiveByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateAccount
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}

	// upsert the inactive account holding the pending name/hash
	existing, err := s.userRepo.FindByEmail(email)
	switch {
	case err == nil:
		if err := s.userRepo.Update(existing.ID, map[string]any{
			"name":     strings.TrimSpace(name),
			"password": string(hashed),
		}); err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user := &entity.User{
			Email:    email,
			Name:     strings.TrimSpace(name),
			Password: string(hashed),
			IsActive: false,
		}
		if err := s.userRepo.Create(user); err != nil {
			return err
		}
	default:
		return err
	}

	code := generateCode()
	if err := s.otpRepo.Replace(email, code); err != nil {
		return err
	}
	return s.mail.SendOTP(email, code)
}

// VerifyOTP activates the pending account and issues the session token.
func (s *AuthService) VerifyOTP(email, code string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	otp, err := s.otpRepo.Find(email, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCode
		}
		return "", nil, err
	}
	if otp.Expired(time.Now()) {
		// burn the record; the same code can never be retried
		if err := s.otpRepo.Delete(otp.ID); err != nil {
			return "", nil, err
		}
		return "", nil, ErrExpiredCode
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCode
	}
	if err := s.userRepo.Activate(user.ID); err != nil {
		return "", nil, err
	}
	user.IsActive = true

	if err := s.otpRepo.Delete(otp.ID); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// ResendOTP reissues a code for a pending account. The new code
// replaces the old one, so only the newest verifies.
func (s *AuthService) ResendOTP(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil || user.IsActive {
		return ErrAccountNotFound
	}

	code := generateCode()
	if err := s.otpRepo.Replace(email, code); err != nil {
		return err
	}
	return s.mail.SendOTP(email, code)
}

// Login checks credentials and mints a JWT. Unknown email, wrong
// password and inactive account all answer the same way so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
