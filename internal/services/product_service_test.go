// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descg/descg-backend/internal/models"
	"github.com/descg/descg-backend/internal/store"
)

func TestCreateProductDefaults(t *testing.T) {
	products := newFakeProductStore()
	svc := NewProductService(products)
	userID := uuid.New()

	product, err := svc.CreateProduct(userID, &CreateProductRequest{
		Name: "Desk Lamp",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, product.UserID)
	assert.Equal(t, models.ProviderDeepSeek, product.Provider)
	// Empty language normalizes to "both".
	assert.Equal(t, models.LanguageBoth, product.Language)
}

func TestCreateProductNormalizesLanguage(t *testing.T) {
	svc := NewProductService(newFakeProductStore())
	userID := uuid.New()

	for input, want := range map[string]models.Language{
		"ar":      models.LanguageArabic,
		"العربية": models.LanguageArabic,
		"en":      models.LanguageEnglish,
		"كلاهما":  models.LanguageBoth,
		"klingon": models.LanguageBoth,
	} {
		product, err := svc.CreateProduct(userID, &CreateProductRequest{
			Name:     "Desk Lamp",
			Language: input,
		})
		require.NoError(t, err)
		assert.Equal(t, want, product.Language, "language input %q", input)
	}
}

func TestCreateProductRejectsMissingName(t *testing.T) {
	svc := NewProductService(newFakeProductStore())

	_, err := svc.CreateProduct(uuid.New(), &CreateProductRequest{})
	assert.Error(t, err)
}

func TestCreateProductRejectsBadTone(t *testing.T) {
	svc := NewProductService(newFakeProductStore())

	_, err := svc.CreateProduct(uuid.New(), &CreateProductRequest{
		Name: "Desk Lamp",
		Tone: "aggressive",
	})
	assert.Error(t, err)
}

func TestUpdateProductOwnership(t *testing.T) {
	owner := uuid.New()
	product := testProduct(owner)
	svc := NewProductService(newFakeProductStore(product))

	_, err := svc.UpdateProduct(uuid.New(), product.ID, &UpdateProductRequest{Name: "Hijacked"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateProductSetsFinalDescription(t *testing.T) {
	owner := uuid.New()
	product := testProduct(owner)
	products := newFakeProductStore(product)
	svc := NewProductService(products)

	updated, err := svc.UpdateProduct(owner, product.ID, &UpdateProductRequest{
		Name:        product.Name,
		Description: "The accepted description.",
	})
	require.NoError(t, err)
	assert.Equal(t, "The accepted description.", updated.FinalDescription)
}

func TestUpdateProductKeepsProviderWhenOmitted(t *testing.T) {
	owner := uuid.New()
	product := testProduct(owner)
	product.Provider = models.ProviderGemini
	svc := NewProductService(newFakeProductStore(product))

	updated, err := svc.UpdateProduct(owner, product.ID, &UpdateProductRequest{
		Name: product.Name,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProviderGemini, updated.Provider)
}

func TestDeleteProductOwnership(t *testing.T) {
	owner := uuid.New()
	product := testProduct(owner)
	products := newFakeProductStore(product)
	svc := NewProductService(products)

	err := svc.DeleteProduct(uuid.New(), product.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, svc.DeleteProduct(owner, product.ID))
	_, err = svc.GetProduct(owner, product.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
