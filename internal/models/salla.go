// internal/models/salla.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// SallaProduct mirrors a product record pushed by the Salla storefront
// webhook. The id comes from Salla, not from us.
type SallaProduct struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	MerchantID  int64     `json:"merchant_id" gorm:"index"`
	Name        string    `json:"name" gorm:"size:255"`
	Type        string    `json:"type" gorm:"size:50"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2)"`
	TaxedPrice  float64   `json:"taxed_price" gorm:"type:decimal(10,2)"`
	Tax         float64   `json:"tax" gorm:"type:decimal(10,2)"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status" gorm:"size:50"`
	IsAvailable bool      `json:"is_available"`
	URL         string    `json:"url" gorm:"size:2048"`
	SKU         string    `json:"sku" gorm:"size:100"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SallaToken stores the OAuth credentials obtained for a merchant during
// registration.
type SallaToken struct {
	BaseModel
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	AccessToken  string    `json:"-" gorm:"type:text"`
	RefreshToken string    `json:"-" gorm:"type:text"`
	Scope        string    `json:"scope" gorm:"size:512"`
	TokenType    string    `json:"token_type" gorm:"size:50"`
	ExpiresIn    int       `json:"expires_in"`
}
