// internal/services/generation_service_test.go
package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descg/descg-backend/internal/ai"
	"github.com/descg/descg-backend/internal/models"
	"github.com/descg/descg-backend/internal/store"
)

type fakeProductStore struct {
	products map[uuid.UUID]*models.Product
}

func newFakeProductStore(products ...*models.Product) *fakeProductStore {
	s := &fakeProductStore{products: make(map[uuid.UUID]*models.Product)}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *fakeProductStore) Create(product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.products[product.ID] = product
	return nil
}

func (s *fakeProductStore) GetForUser(id, userID uuid.UUID) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok || p.UserID != userID {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (s *fakeProductStore) ListByUser(userID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) Update(product *models.Product) error {
	s.products[product.ID] = product
	return nil
}

func (s *fakeProductStore) Delete(product *models.Product) error {
	delete(s.products, product.ID)
	return nil
}

type fakeLogStore struct {
	logs []*models.DescriptionLog
}

func (s *fakeLogStore) Append(log *models.DescriptionLog) error {
	log.ID = uuid.New()
	log.CreatedAt = time.Now()
	s.logs = append(s.logs, log)
	return nil
}

func (s *fakeLogStore) GetByID(id uuid.UUID) (*models.DescriptionLog, error) {
	for _, l := range s.logs {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeLogStore) List(offset, limit int) ([]models.DescriptionLog, int64, error) {
	var out []models.DescriptionLog
	for i := len(s.logs) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, *s.logs[i])
	}
	return out, int64(len(s.logs)), nil
}

func (s *fakeLogStore) ListByProduct(productID uuid.UUID) ([]models.DescriptionLog, error) {
	var out []models.DescriptionLog
	for i := len(s.logs) - 1; i >= 0; i-- {
		if s.logs[i].ProductID == productID {
			out = append(out, *s.logs[i])
		}
	}
	return out, nil
}

func (s *fakeLogStore) Latest(productID uuid.UUID) (*models.DescriptionLog, error) {
	for i := len(s.logs) - 1; i >= 0; i-- {
		if s.logs[i].ProductID == productID {
			return s.logs[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeLogStore) RecentTexts(productID uuid.UUID, limit int) ([]string, error) {
	var out []string
	for i := len(s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if s.logs[i].ProductID == productID {
			out = append(out, s.logs[i].GeneratedText)
		}
	}
	return out, nil
}

func (s *fakeLogStore) Update(log *models.DescriptionLog) error {
	for i, l := range s.logs {
		if l.ID == log.ID {
			s.logs[i] = log
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *fakeLogStore) Delete(log *models.DescriptionLog) error {
	for i, l := range s.logs {
		if l.ID == log.ID {
			s.logs = append(s.logs[:i], s.logs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type scriptedProvider struct {
	name        models.Provider
	text        string
	err         error
	instruction string
	maxTokens   int
	calls       int
}

func (p *scriptedProvider) Name() models.Provider { return p.name }

func (p *scriptedProvider) Generate(ctx context.Context, instruction string, maxTokens int) (*ai.Result, error) {
	p.calls++
	p.instruction = instruction
	p.maxTokens = maxTokens
	if p.err != nil {
		return nil, p.err
	}
	return &ai.Result{
		Text:         p.text,
		RequestBody:  json.RawMessage(`{"prompt":"test"}`),
		ResponseBody: json.RawMessage(`{"output":"test"}`),
	}, nil
}

func testProduct(userID uuid.UUID) *models.Product {
	return &models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Name:      "Wireless Headphones",
		Category:  "Electronics",
		Tone:      models.ToneProfessional,
		Length:    models.LengthMedium,
		Language:  models.LanguageEnglish,
		Provider:  models.ProviderDeepSeek,
	}
}

func TestGenerateAppendsCleanedLog(t *testing.T) {
	userID := uuid.New()
	product := testProduct(userID)
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}
	provider := &scriptedProvider{
		name: models.ProviderDeepSeek,
		text: "**Great** sound.\n\nGeneration ID: 99 - internal tag, never mention it in the output.",
	}

	svc := NewGenerationService(products, logs, ai.NewRegistry(provider), DefaultGenerationDefaults())

	result, err := svc.Generate(context.Background(), userID, product.ID, &GenerateRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Great sound.", result.Text)
	assert.Equal(t, models.ProviderDeepSeek, result.Provider)
	assert.NotEqual(t, uuid.Nil, result.LogID)

	require.Len(t, logs.logs, 1)
	log := logs.logs[0]
	assert.Equal(t, product.ID, log.ProductID)
	assert.Equal(t, "Great sound.", log.GeneratedText)
	assert.NotNil(t, log.RequestData)
	assert.NotNil(t, log.ResponseData)
	assert.Equal(t, models.ProviderDeepSeek, log.Provider)
}

func TestGenerateOtherUsersProductNotFound(t *testing.T) {
	owner := uuid.New()
	product := testProduct(owner)
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}
	provider := &scriptedProvider{name: models.ProviderDeepSeek, text: "ok"}

	svc := NewGenerationService(products, logs, ai.NewRegistry(provider), DefaultGenerationDefaults())

	_, err := svc.Generate(context.Background(), uuid.New(), product.ID, &GenerateRequest{})

	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, provider.calls)
	assert.Empty(t, logs.logs)
}

func TestGenerateNoLogOnProviderFailure(t *testing.T) {
	userID := uuid.New()
	product := testProduct(userID)
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}
	provider := &scriptedProvider{
		name: models.ProviderDeepSeek,
		err:  &ai.ProviderError{Provider: models.ProviderDeepSeek, StatusCode: 502},
	}

	svc := NewGenerationService(products, logs, ai.NewRegistry(provider), DefaultGenerationDefaults())

	_, err := svc.Generate(context.Background(), userID, product.ID, &GenerateRequest{})

	require.Error(t, err)
	assert.Empty(t, logs.logs)
}

func TestGenerateRequestOverridesProductSettings(t *testing.T) {
	userID := uuid.New()
	product := testProduct(userID)
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}
	deepseek := &scriptedProvider{name: models.ProviderDeepSeek, text: "deepseek text"}
	gemini := &scriptedProvider{name: models.ProviderGemini, text: "gemini text"}

	svc := NewGenerationService(products, logs, ai.NewRegistry(deepseek, gemini), DefaultGenerationDefaults())

	result, err := svc.Generate(context.Background(), userID, product.ID, &GenerateRequest{
		Tone:     "luxury",
		Length:   "long",
		Language: "ar",
		Provider: "gemini",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ProviderGemini, result.Provider)
	assert.Zero(t, deepseek.calls)
	assert.Equal(t, 1, gemini.calls)
	assert.Equal(t, 500, gemini.maxTokens)
	assert.Contains(t, gemini.instruction, "فاخرة وراقية")
}

func TestGenerateFallsBackToServiceDefaults(t *testing.T) {
	userID := uuid.New()
	product := testProduct(userID)
	product.Tone = ""
	product.Length = ""
	product.Language = ""
	product.Provider = ""
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}
	provider := &scriptedProvider{name: models.ProviderDeepSeek, text: "ok"}

	svc := NewGenerationService(products, logs, ai.NewRegistry(provider), DefaultGenerationDefaults())

	result, err := svc.Generate(context.Background(), userID, product.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, models.ProviderDeepSeek, result.Provider)
	assert.Equal(t, 300, provider.maxTokens)
	// Default language "both" builds the bilingual instruction.
	assert.Contains(t, provider.instruction, "BOTH Arabic and English")
}

func TestGenerateFeedsPriorTextsToPrompt(t *testing.T) {
	userID := uuid.New()
	product := testProduct(userID)
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}
	for _, text := range []string{"first version", "second version"} {
		require.NoError(t, logs.Append(&models.DescriptionLog{ProductID: product.ID, GeneratedText: text}))
	}
	provider := &scriptedProvider{name: models.ProviderDeepSeek, text: "third version"}

	svc := NewGenerationService(products, logs, ai.NewRegistry(provider), DefaultGenerationDefaults())

	_, err := svc.Generate(context.Background(), userID, product.ID, nil)
	require.NoError(t, err)

	assert.Contains(t, provider.instruction, "first version")
	assert.Contains(t, provider.instruction, "second version")
	assert.Contains(t, provider.instruction, "clearly different")
}

func TestGenerateUnknownProvider(t *testing.T) {
	userID := uuid.New()
	product := testProduct(userID)
	product.Provider = models.ProviderGemini
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}
	provider := &scriptedProvider{name: models.ProviderDeepSeek, text: "ok"}

	svc := NewGenerationService(products, logs, ai.NewRegistry(provider), DefaultGenerationDefaults())

	_, err := svc.Generate(context.Background(), userID, product.ID, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown AI provider")
	assert.Empty(t, logs.logs)
}

func TestListHistoryNewestFirst(t *testing.T) {
	userID := uuid.New()
	product := testProduct(userID)
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}
	for _, text := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, logs.Append(&models.DescriptionLog{ProductID: product.ID, GeneratedText: text}))
	}

	svc := NewGenerationService(products, logs, ai.NewRegistry(), DefaultGenerationDefaults())

	history, err := svc.ListHistory(userID, product.ID)
	require.NoError(t, err)

	require.Len(t, history, 3)
	assert.Equal(t, "newest", history[0].GeneratedText)
	assert.Equal(t, "oldest", history[2].GeneratedText)
}

func TestListHistoryOwnershipEnforced(t *testing.T) {
	owner := uuid.New()
	product := testProduct(owner)
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}

	svc := NewGenerationService(products, logs, ai.NewRegistry(), DefaultGenerationDefaults())

	_, err := svc.ListHistory(uuid.New(), product.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLatestReturnsMostRecent(t *testing.T) {
	userID := uuid.New()
	product := testProduct(userID)
	products := newFakeProductStore(product)
	logs := &fakeLogStore{}
	for _, text := range []string{"old", "new"} {
		require.NoError(t, logs.Append(&models.DescriptionLog{ProductID: product.ID, GeneratedText: text}))
	}

	svc := NewGenerationService(products, logs, ai.NewRegistry(), DefaultGenerationDefaults())

	latest, err := svc.Latest(userID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", latest.GeneratedText)
}
