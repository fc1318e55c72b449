package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

// GeminiOptions configures the native Gemini generateContent API.
type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	OnError    func(reason string, err error)
}

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	onError func(reason string, err error)
}

const (
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	CandidateCount   int    `json:"candidateCount,omitempty"`
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiClient(opts GeminiOptions) (*GeminiClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &GeminiClient{
		apiKey:  strings.TrimSpace(opts.APIKey),
		model:   coalesce(opts.Model, defaultGeminiModel),
		baseURL: strings.TrimRight(coalesce(opts.BaseURL, defaultGeminiBaseURL), "/"),
		client:  client,
		onError: opts.OnError,
	}, nil
}

// Suggest returns the first non-blank candidate text as a text payload.
func (g *GeminiClient) Suggest(ctx context.Context, req insight.InsightRequest) (insight.Payload, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: req.Prompt}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			CandidateCount:   1,
			ResponseMimeType: "application/json",
		},
	}
	if strings.TrimSpace(req.System) != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return insight.Payload{}, report(g.onError, "encode_request", failure("encode request", err))
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), &buf)
	if err != nil {
		return insight.Payload{}, report(g.onError, "build_request", failure("build request", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return insight.Payload{}, report(g.onError, "http_request", failure("http request", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		serr := statusError(geminiProviderName, resp)
		return insight.Payload{}, report(g.onError, fmt.Sprintf("http_%d", resp.StatusCode), serr)
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return insight.Payload{}, report(g.onError, "decode_response", failure("decode response", err))
	}
	text := extractText(out)
	if text == "" {
		return insight.Payload{}, report(g.onError, "empty_response", fmt.Errorf("no candidate text: %w", domain.ErrMissingContent))
	}
	return insight.TextPayload(text), nil
}

func (g *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
}

func extractText(resp geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

var _ Suggester = (*GeminiClient)(nil)
