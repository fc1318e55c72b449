package prompt

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

// Suggester asks a chat model for diet tips and returns its raw payload.
type Suggester interface {
	Suggest(ctx context.Context, req insight.InsightRequest) (insight.Payload, error)
}

// Options selects and configures a Suggester.
type Options struct {
	Provider      string
	APIKey        string
	Model         string
	BaseURL       string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	// Timeout bounds each upstream call. Zero leaves the transport default.
	Timeout    time.Duration
	HTTPClient *http.Client
	OnError    func(reason string, err error)
}

// New builds the configured provider. A missing API key is not an error
// here: the returned Suggester fails each call with domain.ErrNotConfigured
// so the service still boots without AI credentials.
func New(opts Options) (Suggester, error) {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", openAIProviderName:
		if strings.TrimSpace(opts.APIKey) == "" {
			return Unconfigured{Provider: openAIProviderName}, nil
		}
		return NewOpenAIClient(OpenAIOptions{
			APIKey:     opts.APIKey,
			Model:      opts.Model,
			BaseURL:    opts.BaseURL,
			HTTPClient: client,
			OnError:    opts.OnError,
		})
	case geminiProviderName:
		key := coalesce(opts.GeminiAPIKey, opts.APIKey)
		if key == "" {
			return Unconfigured{Provider: geminiProviderName}, nil
		}
		return NewGeminiClient(GeminiOptions{
			APIKey:     key,
			Model:      opts.GeminiModel,
			BaseURL:    opts.GeminiBaseURL,
			HTTPClient: client,
			OnError:    opts.OnError,
		})
	default:
		return nil, fmt.Errorf("unknown ai provider %q", opts.Provider)
	}
}

// Unconfigured is the Suggester used when no API key is available.
type Unconfigured struct {
	Provider string
}

func (u Unconfigured) Suggest(context.Context, insight.InsightRequest) (insight.Payload, error) {
	return insight.Payload{}, fmt.Errorf("%s api key: %w", u.Provider, domain.ErrNotConfigured)
}

// StatusError is a non-2xx answer from the provider. It unwraps to the
// domain error matching the status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s status %d", e.Provider, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case http.StatusPaymentRequired:
		return domain.ErrPaymentRequired
	default:
		return domain.ErrProviderFailure
	}
}
