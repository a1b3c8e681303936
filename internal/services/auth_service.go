// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/descg/descg-backend/internal/config"
	"github.com/descg/descg-backend/internal/models"
	"github.com/descg/descg-backend/internal/utils"
)

type AuthService struct {
	db    *gorm.DB
	cfg   *config.Config
	salla *SallaService
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`

	// Optional Salla OAuth handshake carried over from the app install flow.
	SallaCode  string `json:"salla_code,omitempty"`
	SallaScope string `json:"salla_scope,omitempty"`
	SallaState string `json:"salla_state,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User           *models.User `json:"user"`
	AccessToken    string       `json:"token"`
	TokenType      string       `json:"token_type"`
	ExpiresIn      int          `json:"expires_in"` // in seconds
	SallaConnected bool         `json:"salla_connected"`
}

func NewAuthService(db *gorm.DB, cfg *config.Config, salla *SallaService) *AuthService {
	return &AuthService{db: db, cfg: cfg, salla: salla}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, errors.New("user with this email already exists")
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	sallaConnected := false
	if req.SallaCode != "" {
		if _, err := s.salla.ExchangeCode(user.ID, req.SallaCode, req.SallaScope); err != nil {
			// Registration stands even when the storefront link fails; the
			// merchant can reconnect later.
			logrus.WithError(err).WithField("user_id", user.ID).Warn("salla connection failed during registration")
		} else {
			sallaConnected = true
		}
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:           user,
		AccessToken:    token,
		TokenType:      "Bearer",
		ExpiresIn:      s.cfg.JWT.AccessTokenTTL * 3600,
		SallaConnected: sallaConnected,
	}, nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	now := time.Now()
	user.LastLoginAt = &now
	s.db.Model(&user).Update("last_login_at", now)

	token, err := utils.GenerateJWT(user.ID, user.Email, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	var sallaCount int64
	s.db.Model(&models.SallaToken{}).Where("user_id = ?", user.ID).Count(&sallaCount)

	return &AuthResponse{
		User:           &user,
		AccessToken:    token,
		TokenType:      "Bearer",
		ExpiresIn:      s.cfg.JWT.AccessTokenTTL * 3600,
		SallaConnected: sallaCount > 0,
	}, nil
}
