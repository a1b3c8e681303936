// internal/store/product_store.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/descg/descg-backend/internal/models"
)

// ErrNotFound is returned when a record is absent or not visible to the
// requesting user. Callers cannot distinguish the two cases.
var ErrNotFound = errors.New("record not found")

type ProductStore interface {
	Create(product *models.Product) error
	GetForUser(id, userID uuid.UUID) (*models.Product, error)
	ListByUser(userID uuid.UUID) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(product *models.Product) error
}

type productStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) ProductStore {
	return &productStore{db: db}
}

func (s *productStore) Create(product *models.Product) error {
	if err := s.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *productStore) GetForUser(id, userID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *productStore) ListByUser(userID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return products, nil
}

func (s *productStore) Update(product *models.Product) error {
	if err := s.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (s *productStore) Delete(product *models.Product) error {
	// Logs go with the product; the FK cascade handles soft-deleted rows too.
	if err := s.db.Select("Logs").Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
