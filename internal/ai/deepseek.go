// internal/ai/deepseek.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/descg/descg-backend/internal/models"
)

// System instruction sent with every chat completion: professional marketing
// copy, no exaggeration.
const deepseekSystemPrompt = "أنت خبير في كتابة الأوصاف التسويقية الاحترافية. اكتب أوصافاً مقنعة وجذابة بدون مبالغة."

type DeepSeekClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

func NewDeepSeekClient(apiKey, apiURL, model string) *DeepSeekClient {
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}
	if model == "" {
		model = "deepseek-chat"
	}
	return &DeepSeekClient{
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
		httpClient: newHTTPClient(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepseekRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	MaxTokens        int           `json:"max_tokens"`
	Temperature      float64       `json:"temperature"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
	Stream           bool          `json:"stream"`
}

type deepseekResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *DeepSeekClient) Name() models.Provider {
	return models.ProviderDeepSeek
}

func (c *DeepSeekClient) Generate(ctx context.Context, instruction string, maxTokens int) (*Result, error) {
	reqBody := deepseekRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: deepseekSystemPrompt},
			{Role: "user", Content: instruction},
		},
		MaxTokens:        maxTokens,
		Temperature:      0.7,
		TopP:             0.9,
		FrequencyPenalty: 0.1,
		PresencePenalty:  0.1,
		Stream:           false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deepseek request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build deepseek request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: c.Name(), StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{Provider: c.Name(), StatusCode: resp.StatusCode, Body: truncate(body)}
	}

	var parsed deepseekResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ProviderError{Provider: c.Name(), StatusCode: resp.StatusCode, Body: truncate(body), Err: err}
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, &ProviderError{
			Provider:   c.Name(),
			StatusCode: resp.StatusCode,
			Body:       truncate(body),
			Err:        fmt.Errorf("response has no completion text"),
		}
	}

	return &Result{
		Text:         parsed.Choices[0].Message.Content,
		RequestBody:  payload,
		ResponseBody: body,
	}, nil
}
