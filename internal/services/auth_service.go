package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learninghub/internal/config"
	"learninghub/internal/dto"
	"learninghub/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account has been deactivated")
	ErrUserNotFound       = errors.New("user not found")
)

const (
	welcomeBonusDescription = "Welcome bonus"
	dailyLoginDescription   = "Daily login bonus"
)

type AuthService struct {
	db      *gorm.DB
	cfg     *config.Config
	credits *CreditService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, credits *CreditService) *AuthService {
	return &AuthService{db: db, cfg: cfg, credits: credits}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		return nil, errors.New("name and email required, password must be at least 6 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleUser,
		Credits:  s.cfg.Credits.SignupBonus,
		IsActive: true,
	}

	// The starting balance and its ledger row land in one commit.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		bonus := models.CreditTransaction{
			ID:          uuid.New(),
			UserID:      user.ID,
			Amount:      s.cfg.Credits.SignupBonus,
			Kind:        models.TxEarn,
			Description: welcomeBonusDescription,
		}
		return tx.Create(&bonus).Error
	})
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(&user)}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if granted, err := s.grantDailyBonus(user.ID); err == nil && granted {
		user.Credits += s.cfg.Credits.DailyLoginBonus
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(&user)}, nil
}

// grantDailyBonus awards the login bonus at most once per calendar day.
func (s *AuthService) grantDailyBonus(userID uuid.UUID) (bool, error) {
	if s.cfg.Credits.DailyLoginBonus <= 0 {
		return false, nil
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	err := s.db.Model(&models.CreditTransaction{}).
		Where("user_id = ? AND description = ? AND created_at >= ?", userID, dailyLoginDescription, startOfDay).
		Count(&count).Error
	if err != nil || count > 0 {
		return false, err
	}

	if err := s.credits.Earn(userID, s.cfg.Credits.DailyLoginBonus, dailyLoginDescription); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
