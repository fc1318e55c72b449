// Command aiprobe sends one sample diet-suggestion request to the configured
// provider and prints the parsed tips. It reads the same AI_* variables as
// the API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
	"github.com/faheemframes/healthyfi/internal/providers/prompt"
)

func main() {
	_ = godotenv.Load()

	var (
		providerFlag string
		keyFlag      string
		caloriesFlag float64
		waterFlag    float64
		timeoutFlag  time.Duration
	)
	flag.StringVar(&providerFlag, "provider", envOr("AI_PROVIDER", "openai"), "AI provider (openai or gemini)")
	flag.StringVar(&keyFlag, "key", "", "API key (falls back to environment)")
	flag.Float64Var(&caloriesFlag, "calories", 1500, "sample calorie intake")
	flag.Float64Var(&waterFlag, "water", 1200, "sample water intake in ml")
	flag.DurationVar(&timeoutFlag, "timeout", 30*time.Second, "request timeout")
	flag.Parse()

	provider := strings.ToLower(strings.TrimSpace(providerFlag))
	key := strings.TrimSpace(keyFlag)
	opts := prompt.Options{
		Provider:      provider,
		APIKey:        firstNonEmpty(key, os.Getenv("AI_API_KEY"), os.Getenv("LOVABLE_API_KEY")),
		Model:         os.Getenv("AI_MODEL"),
		BaseURL:       os.Getenv("AI_BASE_URL"),
		GeminiAPIKey:  firstNonEmpty(key, os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		Timeout:       timeoutFlag,
	}
	suggester, err := prompt.New(opts)
	if err != nil {
		exitWithError(err)
	}

	goal := "maintain"
	req := insight.BuildInsightRequest(insight.InsightInput{
		CalorieIntake: caloriesFlag,
		WaterIntake:   waterFlag,
		Profile:       &domain.Profile{Goal: &goal},
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	payload, err := suggester.Suggest(ctx, req)
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		exitWithError(fmt.Errorf("%s API key is required via -key or environment", strings.ToUpper(provider)))
	case err != nil:
		exitWithError(fmt.Errorf("%s request failed: %w", provider, err))
	}

	fmt.Printf("%s answered with a %s payload\n", strings.ToUpper(provider), payload.Kind)
	for i, tip := range insight.ParseSuggestions(payload) {
		fmt.Printf("%d. %s\n", i+1, tip)
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
