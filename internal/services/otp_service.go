// internal/services/otp_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/descg/descg-backend/internal/models"
	"github.com/descg/descg-backend/internal/utils"
)

type OTPService struct {
	db           *gorm.DB
	notification *NotificationService
}

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"required,oneof=registration password_reset login"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
	Type  string `json:"type" validate:"required,oneof=registration password_reset login"`
}

const otpTTL = 10 * time.Minute

func NewOTPService(db *gorm.DB, notification *NotificationService) *OTPService {
	return &OTPService{db: db, notification: notification}
}

// Send issues a fresh 6-digit code for the email/type pair, replacing any
// previous codes of that type.
func (s *OTPService) Send(req *SendOTPRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	otpType := models.OTPType(req.Type)

	// Password resets only make sense for an existing account.
	if otpType == models.OTPTypePasswordReset {
		var user models.User
		if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("user not found with this email address")
			}
			return fmt.Errorf("database error: %w", err)
		}
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := s.db.Where("email = ? AND type = ?", req.Email, otpType).
		Delete(&models.OTP{}).Error; err != nil {
		return fmt.Errorf("failed to clear previous OTPs: %w", err)
	}

	otp := &models.OTP{
		Email:     req.Email,
		Code:      code,
		Type:      otpType,
		ExpiresAt: time.Now().Add(otpTTL),
		Used:      false,
	}
	if err := s.db.Create(otp).Error; err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := s.notification.SendOTPEmail(req.Email, code, otpType); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	return nil
}

// Verify marks a valid, unexpired, unused code as used. A code only verifies
// once.
func (s *OTPService) Verify(req *VerifyOTPRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var otp models.OTP
	err := s.db.Where("email = ? AND code = ? AND type = ? AND used = ? AND expires_at > ?",
		req.Email, req.OTP, req.Type, false, time.Now()).First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("invalid or expired OTP")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&otp).Update("used", true).Error; err != nil {
		return fmt.Errorf("failed to mark OTP as used: %w", err)
	}

	return nil
}

// Resend is Send with the same replacement semantics; kept separate so the
// handler can rate-limit it independently.
func (s *OTPService) Resend(req *SendOTPRequest) error {
	return s.Send(req)
}
