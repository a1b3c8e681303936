// internal/services/salla_service.go
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/descg/descg-backend/internal/config"
	"github.com/descg/descg-backend/internal/models"
)

// SallaService talks to the Salla storefront platform: OAuth code exchange
// during registration and ingestion of product webhooks.
type SallaService struct {
	db         *gorm.DB
	cfg        *config.Config
	httpClient *http.Client
}

type SallaTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// SallaWebhookEvent is the envelope Salla posts to the webhook endpoint.
type SallaWebhookEvent struct {
	Event    string          `json:"event"`
	Merchant int64           `json:"merchant"`
	Data     json.RawMessage `json:"data"`
}

type sallaWebhookProduct struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
	URL      string `json:"url"`

	IsAvailable bool `json:"is_available"`

	Price      sallaAmount `json:"price"`
	TaxedPrice sallaAmount `json:"taxed_price"`
	Tax        sallaAmount `json:"tax"`
}

type sallaAmount struct {
	Amount float64 `json:"amount"`
}

func NewSallaService(db *gorm.DB, cfg *config.Config) *SallaService {
	return &SallaService{
		db:         db,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ExchangeCode swaps an OAuth authorization code for tokens and stores them
// for the user. A failed exchange is logged and reported but does not fail
// registration.
func (s *SallaService) ExchangeCode(userID uuid.UUID, code, scope string) (*SallaTokenResponse, error) {
	form := url.Values{
		"client_id":     {s.cfg.Salla.ClientID},
		"client_secret": {s.cfg.Salla.ClientSecret},
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"scope":         {scope},
		"redirect_uri":  {s.cfg.Salla.RedirectURI},
	}

	resp, err := s.httpClient.Post(s.cfg.Salla.TokenURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("salla token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read salla token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("salla token exchange failed")
		return nil, fmt.Errorf("salla token exchange failed with HTTP %d", resp.StatusCode)
	}

	var token SallaTokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("failed to decode salla token response: %w", err)
	}

	record := &models.SallaToken{
		UserID:       userID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Scope:        token.Scope,
		TokenType:    token.TokenType,
		ExpiresIn:    token.ExpiresIn,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to store salla token: %w", err)
	}

	return &token, nil
}

// HandleProductCreated upserts the product payload of a `product.created`
// webhook into the salla_products mirror table.
func (s *SallaService) HandleProductCreated(event *SallaWebhookEvent) error {
	var payload sallaWebhookProduct
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return fmt.Errorf("invalid salla product payload: %w", err)
	}
	if payload.ID == 0 {
		return fmt.Errorf("salla product payload missing id")
	}

	product := &models.SallaProduct{
		ID:          payload.ID,
		MerchantID:  event.Merchant,
		Name:        payload.Name,
		Type:        payload.Type,
		Price:       payload.Price.Amount,
		TaxedPrice:  payload.TaxedPrice.Amount,
		Tax:         payload.Tax.Amount,
		Quantity:    payload.Quantity,
		Status:      payload.Status,
		IsAvailable: payload.IsAvailable,
		URL:         payload.URL,
		SKU:         payload.SKU,
	}
	if product.Name == "" {
		product.Name = "Unnamed Product"
	}
	if product.Type == "" {
		product.Type = "default"
	}
	if product.Status == "" {
		product.Status = "hidden"
	}

	if err := s.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to save salla product: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"salla_product_id": product.ID,
		"merchant_id":      product.MerchantID,
	}).Info("salla product synced")

	return nil
}
