// internal/models/description_log.go
package models

import (
	"github.com/google/uuid"
)

// DescriptionLog is one immutable record of a generation attempt. RequestData
// and ResponseData keep the exact payloads exchanged with the provider so a
// bad generation can be diagnosed after the fact.
type DescriptionLog struct {
	BaseModel
	ProductID     uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	GeneratedText string    `json:"generated_text" gorm:"type:text;not null"`
	RequestData   JSONB     `json:"request_data" gorm:"type:jsonb"`
	ResponseData  JSONB     `json:"response_data" gorm:"type:jsonb"`
	Provider      Provider  `json:"ai_provider" gorm:"column:ai_provider;type:varchar(20)"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
