// internal/services/generation_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/descg/descg-backend/internal/ai"
	"github.com/descg/descg-backend/internal/models"
	"github.com/descg/descg-backend/internal/store"
)

// GenerationService runs the end-to-end "generate a fresh description for
// product P" use case: product lookup, option resolution, prompt build,
// provider call, cleanup, log persistence.
type GenerationService struct {
	products  store.ProductStore
	logs      store.DescriptionLogStore
	providers *ai.Registry
	defaults  GenerationDefaults
}

// GenerationDefaults fill any option neither the request nor the product sets.
type GenerationDefaults struct {
	Tone     models.Tone
	Length   models.Length
	Language models.Language
	Provider models.Provider
}

func DefaultGenerationDefaults() GenerationDefaults {
	return GenerationDefaults{
		Tone:     models.ToneProfessional,
		Length:   models.LengthMedium,
		Language: models.LanguageBoth,
		Provider: models.ProviderDeepSeek,
	}
}

// GenerateRequest carries per-request overrides of the product's stored
// generation defaults.
type GenerateRequest struct {
	Tone     string `json:"tone" validate:"omitempty,oneof=professional friendly casual luxury playful emotional"`
	Length   string `json:"length" validate:"omitempty,oneof=short medium long"`
	Language string `json:"language"`
	Provider string `json:"ai_provider" validate:"omitempty,oneof=deepseek gemini"`
}

type GenerateResult struct {
	Text     string          `json:"description"`
	LogID    uuid.UUID       `json:"log_id"`
	Provider models.Provider `json:"ai_provider"`
}

func NewGenerationService(products store.ProductStore, logs store.DescriptionLogStore, providers *ai.Registry, defaults GenerationDefaults) *GenerationService {
	return &GenerationService{
		products:  products,
		logs:      logs,
		providers: providers,
		defaults:  defaults,
	}
}

// Generate produces a new description for the product and appends a log row.
// Nothing is written when the provider fails, so a failed call leaves no
// trace beyond server logs.
func (s *GenerationService) Generate(ctx context.Context, userID, productID uuid.UUID, req *GenerateRequest) (*GenerateResult, error) {
	product, err := s.products.GetForUser(productID, userID)
	if err != nil {
		return nil, err
	}

	opts := s.resolveOptions(product, req)

	priorTexts, err := s.logs.RecentTexts(productID, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior descriptions: %w", err)
	}

	prompt := ai.BuildPrompt(ai.ProductSnapshot{
		Name:     product.Name,
		Category: product.Category,
		Features: product.Features,
		Keywords: product.Keywords,
	}, ai.PromptOptions{
		Tone:       opts.Tone,
		Length:     opts.Length,
		Language:   opts.Language,
		PriorTexts: priorTexts,
	})

	provider, err := s.providers.Get(opts.Provider)
	if err != nil {
		return nil, err
	}

	result, err := provider.Generate(ctx, prompt.Text, prompt.MaxTokens)
	if err != nil {
		return nil, err
	}

	text := ai.Clean(result.Text)

	log := &models.DescriptionLog{
		ProductID:     product.ID,
		GeneratedText: text,
		RequestData:   rawToJSONB(result.RequestBody),
		ResponseData:  rawToJSONB(result.ResponseBody),
		Provider:      provider.Name(),
	}
	if err := s.logs.Append(log); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"log_id":     log.ID,
		"provider":   provider.Name(),
		"text_size":  len(text),
	}).Info("description generated")

	return &GenerateResult{
		Text:     text,
		LogID:    log.ID,
		Provider: provider.Name(),
	}, nil
}

// resolveOptions layers request overrides over the product's stored defaults,
// falling back to the service defaults for anything still unset.
func (s *GenerationService) resolveOptions(product *models.Product, req *GenerateRequest) GenerationDefaults {
	opts := GenerationDefaults{
		Tone:     product.Tone,
		Length:   product.Length,
		Language: product.Language,
		Provider: product.Provider,
	}

	if req != nil {
		if req.Tone != "" {
			opts.Tone = models.Tone(req.Tone)
		}
		if req.Length != "" {
			opts.Length = models.Length(req.Length)
		}
		if req.Language != "" {
			opts.Language = models.ParseLanguage(req.Language)
		}
		if req.Provider != "" {
			opts.Provider = models.Provider(req.Provider)
		}
	}

	if !opts.Tone.Valid() {
		opts.Tone = s.defaults.Tone
	}
	if !opts.Length.Valid() {
		opts.Length = s.defaults.Length
	}
	if opts.Language == "" {
		opts.Language = s.defaults.Language
	}
	if !opts.Provider.Valid() {
		opts.Provider = s.defaults.Provider
	}

	return opts
}

// ListHistory returns all generation attempts for a product the user owns,
// newest first.
func (s *GenerationService) ListHistory(userID, productID uuid.UUID) ([]models.DescriptionLog, error) {
	if _, err := s.products.GetForUser(productID, userID); err != nil {
		return nil, err
	}
	return s.logs.ListByProduct(productID)
}

// Latest returns the most recent generation for a product the user owns.
func (s *GenerationService) Latest(userID, productID uuid.UUID) (*models.DescriptionLog, error) {
	if _, err := s.products.GetForUser(productID, userID); err != nil {
		return nil, err
	}
	return s.logs.Latest(productID)
}

func rawToJSONB(raw json.RawMessage) models.JSONB {
	if len(raw) == 0 {
		return nil
	}
	var data models.JSONB
	if err := json.Unmarshal(raw, &data); err != nil {
		// Non-object payloads are kept under a catch-all key rather than lost.
		return models.JSONB{"raw": string(raw)}
	}
	return data
}
