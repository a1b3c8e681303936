// internal/store/description_log_store.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/descg/descg-backend/internal/models"
)

// DescriptionLogStore is the append-only history of generation attempts.
// Update exists only for the administrative surface (timestamp backfill of
// historical rows); the generation flow never mutates a log.
type DescriptionLogStore interface {
	Append(log *models.DescriptionLog) error
	GetByID(id uuid.UUID) (*models.DescriptionLog, error)
	List(offset, limit int) ([]models.DescriptionLog, int64, error)
	ListByProduct(productID uuid.UUID) ([]models.DescriptionLog, error)
	Latest(productID uuid.UUID) (*models.DescriptionLog, error)
	RecentTexts(productID uuid.UUID, limit int) ([]string, error)
	Update(log *models.DescriptionLog) error
	Delete(log *models.DescriptionLog) error
}

type descriptionLogStore struct {
	db *gorm.DB
}

func NewDescriptionLogStore(db *gorm.DB) DescriptionLogStore {
	return &descriptionLogStore{db: db}
}

func (s *descriptionLogStore) Append(log *models.DescriptionLog) error {
	if err := s.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to append description log: %w", err)
	}
	return nil
}

func (s *descriptionLogStore) GetByID(id uuid.UUID) (*models.DescriptionLog, error) {
	var log models.DescriptionLog
	err := s.db.Preload("Product").First(&log, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &log, nil
}

func (s *descriptionLogStore) List(offset, limit int) ([]models.DescriptionLog, int64, error) {
	var total int64
	if err := s.db.Model(&models.DescriptionLog{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("database error: %w", err)
	}

	var logs []models.DescriptionLog
	err := s.db.Preload("Product").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("database error: %w", err)
	}
	return logs, total, nil
}

func (s *descriptionLogStore) ListByProduct(productID uuid.UUID) ([]models.DescriptionLog, error) {
	var logs []models.DescriptionLog
	err := s.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return logs, nil
}

func (s *descriptionLogStore) Latest(productID uuid.UUID) (*models.DescriptionLog, error) {
	var log models.DescriptionLog
	err := s.db.Where("product_id = ?", productID).Order("created_at DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &log, nil
}

func (s *descriptionLogStore) RecentTexts(productID uuid.UUID, limit int) ([]string, error) {
	var texts []string
	err := s.db.Model(&models.DescriptionLog{}).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("generated_text", &texts).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return texts, nil
}

func (s *descriptionLogStore) Update(log *models.DescriptionLog) error {
	if err := s.db.Save(log).Error; err != nil {
		return fmt.Errorf("failed to update description log: %w", err)
	}
	return nil
}

func (s *descriptionLogStore) Delete(log *models.DescriptionLog) error {
	if err := s.db.Delete(log).Error; err != nil {
		return fmt.Errorf("failed to delete description log: %w", err)
	}
	return nil
}
