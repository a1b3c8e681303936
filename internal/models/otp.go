// internal/models/otp.go
package models

import "time"

type OTP struct {
	BaseModel
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Code      string    `json:"-" gorm:"size:6;not null"`
	Type      OTPType   `json:"type" gorm:"type:varchar(20);not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"default:false"`
}

func (o *OTP) Expired() bool {
	return time.Now().After(o.ExpiresAt)
}
