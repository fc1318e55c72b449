package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/middleware"
)

func TestAIFailure(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{err: fmt.Errorf("suggest: %w", domain.ErrRateLimited), code: http.StatusTooManyRequests, msg: msgRateLimited},
		{err: domain.ErrPaymentRequired, code: http.StatusPaymentRequired, msg: msgPaymentRequired},
		{err: domain.ErrMissingContent, code: http.StatusInternalServerError, msg: msgNoSuggestions},
		{err: domain.ErrNotConfigured, code: http.StatusInternalServerError, msg: msgNotConfigured},
		{err: domain.ErrProviderFailure, code: http.StatusInternalServerError, msg: msgGatewayError},
		{err: context.DeadlineExceeded, code: http.StatusInternalServerError, msg: msgGatewayError},
	}
	for _, tc := range tests {
		code, msg := aiFailure(tc.err)
		if code != tc.code || msg != tc.msg {
			t.Fatalf("aiFailure(%v) = %d %q, want %d %q", tc.err, code, msg, tc.code, tc.msg)
		}
	}
	if isAIError(context.Canceled) {
		t.Fatal("context errors are store failures, not AI failures")
	}
}

func TestPrinterLocalizes(t *testing.T) {
	for key := range indonesian {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if got := printer(req).Sprintf(key); got != key {
			t.Fatalf("en %q = %q", key, got)
		}
		req = req.WithContext(context.WithValue(req.Context(), middleware.LocaleKey, "id"))
		if got := printer(req).Sprintf(key); got != indonesian[key] {
			t.Fatalf("id %q = %q, want %q", key, got, indonesian[key])
		}
	}
}

func TestDecodeImage(t *testing.T) {
	tests := map[string]string{
		"":                               "",
		"aGk=":                           "hi",
		"data:image/jpeg;base64,aGk=":    "hi",
		"  data:image/png;base64,aGk=  ": "hi",
	}
	for in, want := range tests {
		got, err := decodeImage(in)
		if err != nil || string(got) != want {
			t.Fatalf("decodeImage(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := decodeImage("not base64!"); err == nil {
		t.Fatal("expected error")
	}
}
