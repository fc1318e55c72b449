package prompt

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/faheemframes/healthyfi/internal/domain"
)

const (
	geminiProviderName = "gemini"
	openAIProviderName = "openai"

	maxErrorBody = 2 << 10
)

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}

// statusError drains a bounded slice of the body for diagnostics.
func statusError(provider string, resp *http.Response) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Provider: provider, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

func failure(reason string, err error) error {
	return fmt.Errorf("%s: %w: %v", reason, domain.ErrProviderFailure, err)
}

func report(hook func(string, error), reason string, err error) error {
	if hook != nil {
		hook(reason, err)
	}
	return err
}
