// internal/services/description_log_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/descg/descg-backend/internal/models"
	"github.com/descg/descg-backend/internal/store"
	"github.com/descg/descg-backend/internal/utils"
)

// DescriptionLogService is the administrative surface over the generation
// history. Normal generations go through GenerationService; this exists for
// inspection and the occasional historical repair.
type DescriptionLogService struct {
	logs     store.DescriptionLogStore
	products store.ProductStore
}

type CreateLogRequest struct {
	ProductID     uuid.UUID              `json:"product_id" validate:"required"`
	GeneratedText string                 `json:"generated_text" validate:"required"`
	RequestData   map[string]interface{} `json:"request_data,omitempty"`
	ResponseData  map[string]interface{} `json:"response_data,omitempty"`
	Provider      string                 `json:"ai_provider" validate:"omitempty,oneof=deepseek gemini"`
}

type UpdateLogRequest struct {
	GeneratedText string     `json:"generated_text,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

func NewDescriptionLogService(logs store.DescriptionLogStore, products store.ProductStore) *DescriptionLogService {
	return &DescriptionLogService{logs: logs, products: products}
}

func (s *DescriptionLogService) List(params utils.PaginationParams) (utils.PaginationResult, error) {
	offset := (params.Page - 1) * params.Limit
	logs, total, err := s.logs.List(offset, params.Limit)
	if err != nil {
		return utils.PaginationResult{}, err
	}
	return utils.CreatePaginationResult(logs, total, params), nil
}

func (s *DescriptionLogService) Get(id uuid.UUID) (*models.DescriptionLog, error) {
	return s.logs.GetByID(id)
}

func (s *DescriptionLogService) Create(userID uuid.UUID, req *CreateLogRequest) (*models.DescriptionLog, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// The target product must exist and belong to the caller.
	if _, err := s.products.GetForUser(req.ProductID, userID); err != nil {
		return nil, err
	}

	log := &models.DescriptionLog{
		ProductID:     req.ProductID,
		GeneratedText: req.GeneratedText,
		RequestData:   models.JSONB(req.RequestData),
		ResponseData:  models.JSONB(req.ResponseData),
		Provider:      models.Provider(req.Provider),
	}
	if err := s.logs.Append(log); err != nil {
		return nil, err
	}
	return log, nil
}

// Update allows the one-time timestamp backfill and text correction on
// historical rows. Payloads and provider are immutable.
func (s *DescriptionLogService) Update(id uuid.UUID, req *UpdateLogRequest) (*models.DescriptionLog, error) {
	log, err := s.logs.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.GeneratedText != "" {
		log.GeneratedText = req.GeneratedText
	}
	if req.CreatedAt != nil {
		log.CreatedAt = *req.CreatedAt
	}

	if err := s.logs.Update(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *DescriptionLogService) Delete(id uuid.UUID) error {
	log, err := s.logs.GetByID(id)
	if err != nil {
		return err
	}
	return s.logs.Delete(log)
}
