// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneCasual       Tone = "casual"
	ToneLuxury       Tone = "luxury"
	TonePlayful      Tone = "playful"
	ToneEmotional    Tone = "emotional"
)

type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

type Language string

const (
	LanguageArabic  Language = "arabic"
	LanguageEnglish Language = "english"
	LanguageBoth    Language = "both"
)

type Provider string

const (
	ProviderDeepSeek Provider = "deepseek"
	ProviderGemini   Provider = "gemini"
)

type OTPType string

const (
	OTPTypeRegistration  OTPType = "registration"
	OTPTypePasswordReset OTPType = "password_reset"
	OTPTypeLogin         OTPType = "login"
)

// ParseLanguage normalizes the language values the dashboard sends (short
// codes and the Arabic labels the legacy clients still use). Anything
// unrecognized means "both".
func ParseLanguage(value string) Language {
	switch value {
	case "ar", "arabic", "العربية":
		return LanguageArabic
	case "en", "english", "English":
		return LanguageEnglish
	case "both", "كلاهما":
		return LanguageBoth
	default:
		return LanguageBoth
	}
}

func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneCasual, ToneLuxury, TonePlayful, ToneEmotional:
		return true
	}
	return false
}

func (l Length) Valid() bool {
	switch l {
	case LengthShort, LengthMedium, LengthLong:
		return true
	}
	return false
}

func (p Provider) Valid() bool {
	return p == ProviderDeepSeek || p == ProviderGemini
}
