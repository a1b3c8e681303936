// internal/ai/provider.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/descg/descg-backend/internal/models"
)

// Result is a normalized provider response. RequestBody and ResponseBody keep
// the exact bytes that went over the wire; the orchestrator persists them
// into the generation log.
type Result struct {
	Text         string
	RequestBody  json.RawMessage
	ResponseBody json.RawMessage
}

// Provider is one external text-generation backend.
type Provider interface {
	Name() models.Provider
	Generate(ctx context.Context, instruction string, maxTokens int) (*Result, error)
}

// ProviderError is returned on a non-success HTTP response or a response
// missing the expected text field.
type ProviderError struct {
	Provider   models.Provider
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

const (
	connectTimeout = 30 * time.Second
	requestTimeout = 90 * time.Second

	// Response bodies are truncated to this many bytes in errors and logs.
	maxErrorBody = 500
)

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
		},
	}
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		return string(b[:maxErrorBody]) + "..."
	}
	return string(b)
}

// Registry resolves a configured provider name to its client. Every client is
// wrapped with the retry policy, so callers see only the final outcome.
type Registry struct {
	providers map[models.Provider]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[models.Provider]Provider)}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

func (r *Registry) Get(name models.Provider) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown AI provider %q", name)
	}
	return p, nil
}

// WithRetry decorates a provider with the retry policy.
func WithRetry(p Provider, policy RetryPolicy) Provider {
	return &retryingProvider{inner: p, policy: policy}
}

type retryingProvider struct {
	inner  Provider
	policy RetryPolicy
}

func (p *retryingProvider) Name() models.Provider {
	return p.inner.Name()
}

func (p *retryingProvider) Generate(ctx context.Context, instruction string, maxTokens int) (*Result, error) {
	var result *Result
	operation := fmt.Sprintf("%s generation", p.inner.Name())

	err := p.policy.Do(ctx, operation, func(ctx context.Context) error {
		r, err := p.inner.Generate(ctx, instruction, maxTokens)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
