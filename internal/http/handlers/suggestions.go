package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

type dietSuggestionsRequest struct {
	CalorieIntake float64         `json:"calorieIntake"`
	WaterIntake   float64         `json:"waterIntake"`
	UserProfile   *domain.Profile `json:"userProfile"`
}

type scanMealRequest struct {
	Image string `json:"image"`
}

// aiFailure maps a suggestion error to its status and message key.
func aiFailure(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, msgRateLimited
	case errors.Is(err, domain.ErrPaymentRequired):
		return http.StatusPaymentRequired, msgPaymentRequired
	case errors.Is(err, domain.ErrMissingContent):
		return http.StatusInternalServerError, msgNoSuggestions
	case errors.Is(err, domain.ErrNotConfigured):
		return http.StatusInternalServerError, msgNotConfigured
	default:
		return http.StatusInternalServerError, msgGatewayError
	}
}

func aiErrorCode(status int) string {
	switch status {
	case http.StatusTooManyRequests:
		return "rate_limited"
	case http.StatusPaymentRequired:
		return "payment_required"
	default:
		return "ai_unavailable"
	}
}

func (a *App) logAIFailure(r *http.Request, err error) {
	a.log(r).Error().Err(err).
		Str("path", r.URL.Path).
		Msg("diet suggestions failed")
}

// DietSuggestions is the public function endpoint: totals and profile come
// from the body, tips go back as {"suggestions": [...]}.
func (a *App) DietSuggestions(w http.ResponseWriter, r *http.Request) {
	p := printer(r)
	var req dietSuggestionsRequest
	if err := a.decode(w, r, maxBodyBytes, &req); err != nil {
		a.functionError(w, http.StatusInternalServerError, p.Sprintf(msgInvalidPayload))
		return
	}
	tips, err := a.Suggestions.Suggest(r.Context(), insight.InsightInput{
		CalorieIntake: req.CalorieIntake,
		WaterIntake:   req.WaterIntake,
		Profile:       req.UserProfile,
	})
	if err != nil {
		a.logAIFailure(r, err)
		status, msg := aiFailure(err)
		a.functionError(w, status, p.Sprintf(msg))
		return
	}
	a.json(w, http.StatusOK, map[string]any{"suggestions": tips})
}

// PostSuggestions runs the same pipeline for the authenticated caller with
// today's totals and profile read from the store.
func (a *App) PostSuggestions(w http.ResponseWriter, r *http.Request) {
	sess, err := a.session(r)
	if err != nil {
		a.storeError(w, r, err, "load profile")
		return
	}
	tips, err := a.Suggestions.SuggestForSession(r.Context(), sess)
	if err != nil {
		if !isAIError(err) {
			a.storeError(w, r, err, "load intake")
			return
		}
		a.logAIFailure(r, err)
		status, msg := aiFailure(err)
		a.error(w, status, aiErrorCode(status), printer(r).Sprintf(msg))
		return
	}
	a.json(w, http.StatusOK, map[string]any{"suggestions": tips})
}

func isAIError(err error) bool {
	for _, target := range []error{domain.ErrRateLimited, domain.ErrPaymentRequired, domain.ErrMissingContent, domain.ErrNotConfigured, domain.ErrProviderFailure} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ScanMeal is the public food-recognition function. The optional image is a
// base64 string, with or without a data URL prefix.
func (a *App) ScanMeal(w http.ResponseWriter, r *http.Request) {
	p := printer(r)
	var req scanMealRequest
	if err := a.decode(w, r, maxScanBodyBytes, &req); err != nil && !errors.Is(err, io.EOF) {
		a.functionError(w, http.StatusInternalServerError, p.Sprintf(msgInvalidPayload))
		return
	}
	image, err := decodeImage(req.Image)
	if err != nil {
		a.functionError(w, http.StatusInternalServerError, p.Sprintf(msgInvalidPayload))
		return
	}
	food, err := a.Scanner.Recognize(r.Context(), image)
	if err != nil {
		a.log(r).Error().Err(err).Msg("scan meal failed")
		a.functionError(w, http.StatusInternalServerError, p.Sprintf(msgScanFailed))
		return
	}
	a.json(w, http.StatusOK, food)
}

func decodeImage(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if i := strings.Index(s, ";base64,"); i >= 0 {
		s = s[i+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(s)
}

// FunctionRateLimited rejects a throttled function call in the function
// error shape.
func (a *App) FunctionRateLimited(w http.ResponseWriter, r *http.Request) {
	a.functionError(w, http.StatusTooManyRequests, printer(r).Sprintf(msgRateLimited))
}
