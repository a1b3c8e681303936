// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is a merchant-owned catalog entry. FinalDescription is the text the
// merchant explicitly accepted; generation attempts never touch it.
type Product struct {
	BaseModel
	UserID           uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	Name             string         `json:"name" gorm:"size:255;not null"`
	Price            float64        `json:"price" gorm:"type:decimal(10,2)"`
	SKU              string         `json:"sku" gorm:"size:100"`
	Category         string         `json:"category" gorm:"size:100;index"`
	Features         pq.StringArray `json:"features" gorm:"type:text[]"`
	Keywords         pq.StringArray `json:"keywords" gorm:"type:text[]"`
	Tone             Tone           `json:"tone" gorm:"type:varchar(20)"`
	Length           Length         `json:"length" gorm:"type:varchar(20)"`
	Language         Language       `json:"language" gorm:"type:varchar(20)"`
	Provider         Provider       `json:"ai_provider" gorm:"column:ai_provider;type:varchar(20);default:'deepseek'"`
	FinalDescription string         `json:"final_description" gorm:"type:text"`
	ImageURL         string         `json:"image_url" gorm:"size:2048"`
	SallaProductID   *int64         `json:"salla_product_id,omitempty" gorm:"index"`

	// Relationships
	User User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Logs []DescriptionLog `json:"logs,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
