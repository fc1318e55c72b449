package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

// OpenAIOptions configures any OpenAI-compatible chat completions gateway.
type OpenAIOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	OnError    func(reason string, err error)
}

type OpenAIClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	onError func(reason string, err error)
}

const (
	defaultOpenAIModel   = "google/gemini-2.5-flash"
	defaultOpenAIBaseURL = "https://ai.gateway.lovable.dev/v1"
)

type openAIChatRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Content stays raw: gateways return a string, but some wrap the array directly.
type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenAIClient(opts OpenAIOptions) (*OpenAIClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	baseURL := strings.TrimRight(coalesce(opts.BaseURL, defaultOpenAIBaseURL), "/")
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &OpenAIClient{
		apiKey:  strings.TrimSpace(opts.APIKey),
		model:   coalesce(opts.Model, defaultOpenAIModel),
		baseURL: baseURL,
		client:  client,
		onError: opts.OnError,
	}, nil
}

func (o *OpenAIClient) Suggest(ctx context.Context, req insight.InsightRequest) (insight.Payload, error) {
	payload := openAIChatRequest{
		Model: o.model,
		Messages: []openAIMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return insight.Payload{}, report(o.onError, "encode_request", failure("encode request", err))
	}
	endpoint := fmt.Sprintf("%s/chat/completions", o.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return insight.Payload{}, report(o.onError, "build_request", failure("build request", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	resp, err := o.client.Do(httpReq)
	if err != nil {
		return insight.Payload{}, report(o.onError, "http_request", failure("http request", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		serr := statusError(openAIProviderName, resp)
		return insight.Payload{}, report(o.onError, fmt.Sprintf("http_%d", resp.StatusCode), serr)
	}
	var out openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return insight.Payload{}, report(o.onError, "decode_response", failure("decode response", err))
	}
	if len(out.Choices) == 0 {
		return insight.Payload{}, report(o.onError, "empty_choices", fmt.Errorf("no choices: %w", domain.ErrMissingContent))
	}
	p, ok := insight.PayloadFromJSON(out.Choices[0].Message.Content)
	if !ok {
		return insight.Payload{}, report(o.onError, "empty_response", fmt.Errorf("no content: %w", domain.ErrMissingContent))
	}
	return p, nil
}

var _ Suggester = (*OpenAIClient)(nil)
