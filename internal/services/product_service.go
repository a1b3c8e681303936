// internal/services/product_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/descg/descg-backend/internal/models"
	"github.com/descg/descg-backend/internal/store"
	"github.com/descg/descg-backend/internal/utils"
)

type ProductService struct {
	products store.ProductStore
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Price       float64  `json:"price" validate:"omitempty,min=0"`
	SKU         string   `json:"sku" validate:"omitempty,max=100"`
	Category    string   `json:"category" validate:"omitempty,max=100"`
	Features    []string `json:"features,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Tone        string   `json:"tone" validate:"omitempty,oneof=professional friendly casual luxury playful emotional"`
	Length      string   `json:"length" validate:"omitempty,oneof=short medium long"`
	Language    string   `json:"language,omitempty"`
	Provider    string   `json:"ai_provider" validate:"omitempty,oneof=deepseek gemini"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url" validate:"omitempty,max=2048"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Price       float64  `json:"price" validate:"omitempty,min=0"`
	SKU         string   `json:"sku" validate:"omitempty,max=100"`
	Category    string   `json:"category" validate:"omitempty,max=100"`
	Features    []string `json:"features,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Tone        string   `json:"tone" validate:"omitempty,oneof=professional friendly casual luxury playful emotional"`
	Length      string   `json:"length" validate:"omitempty,oneof=short medium long"`
	Language    string   `json:"language,omitempty"`
	Provider    string   `json:"ai_provider" validate:"omitempty,oneof=deepseek gemini"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url" validate:"omitempty,max=2048"`
}

func NewProductService(products store.ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) CreateProduct(userID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	provider := models.Provider(req.Provider)
	if !provider.Valid() {
		provider = models.ProviderDeepSeek
	}

	product := &models.Product{
		UserID:           userID,
		Name:             req.Name,
		Price:            req.Price,
		SKU:              req.SKU,
		Category:         req.Category,
		Features:         req.Features,
		Keywords:         req.Keywords,
		Tone:             models.Tone(req.Tone),
		Length:           models.Length(req.Length),
		Language:         models.ParseLanguage(req.Language),
		Provider:         provider,
		FinalDescription: req.Description,
		ImageURL:         req.ImageURL,
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) GetProduct(userID, id uuid.UUID) (*models.Product, error) {
	return s.products.GetForUser(id, userID)
}

func (s *ProductService) ListProducts(userID uuid.UUID) ([]models.Product, error) {
	return s.products.ListByUser(userID)
}

func (s *ProductService) UpdateProduct(userID, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.products.GetForUser(id, userID)
	if err != nil {
		return nil, err
	}

	provider := models.Provider(req.Provider)
	if !provider.Valid() {
		provider = product.Provider
	}

	product.Name = req.Name
	product.Price = req.Price
	product.SKU = req.SKU
	product.Category = req.Category
	product.Features = req.Features
	product.Keywords = req.Keywords
	product.Tone = models.Tone(req.Tone)
	product.Length = models.Length(req.Length)
	product.Language = models.ParseLanguage(req.Language)
	product.Provider = provider
	// The merchant accepting (or writing) a description is the only path that
	// touches FinalDescription.
	product.FinalDescription = req.Description
	product.ImageURL = req.ImageURL

	if err := s.products.Update(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(userID, id uuid.UUID) error {
	product, err := s.products.GetForUser(id, userID)
	if err != nil {
		return err
	}
	return s.products.Delete(product)
}
