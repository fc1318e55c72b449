package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
	"github.com/faheemframes/healthyfi/internal/providers/prompt"
)

// SuggestionService runs the insight pipeline: build the prompt, call the
// model once, parse whatever comes back.
type SuggestionService struct {
	suggester prompt.Suggester
	meals     domain.MealRepository
	water     domain.WaterRepository
	logger    zerolog.Logger
}

func NewSuggestionService(suggester prompt.Suggester, meals domain.MealRepository, water domain.WaterRepository, logger zerolog.Logger) *SuggestionService {
	return &SuggestionService{suggester: suggester, meals: meals, water: water, logger: logger}
}

// Suggest returns at most insight.MaxSuggestions tips for the given totals.
// Provider errors are returned wrapped so callers can match the domain kind.
// A payload that parses to nothing is domain.ErrMissingContent.
func (s *SuggestionService) Suggest(ctx context.Context, in insight.InsightInput) ([]string, error) {
	req := insight.BuildInsightRequest(in)
	payload, err := s.suggester.Suggest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	tips := insight.ParseSuggestions(payload)
	if len(tips) == 0 {
		return nil, fmt.Errorf("suggest: blank %s payload: %w", payload.Kind, domain.ErrMissingContent)
	}
	s.logger.Debug().Str("payload_kind", payload.Kind.String()).Int("count", len(tips)).Msg("suggestions parsed")
	return tips, nil
}

// SuggestForSession reads today's totals for the session user and suggests
// from them and the session profile.
func (s *SuggestionService) SuggestForSession(ctx context.Context, sess domain.SessionContext) ([]string, error) {
	start := insight.StartOfDay(sess.Now())
	meals, err := s.meals.ListSince(ctx, sess.UserID, start)
	if err != nil {
		return nil, err
	}
	water, err := s.water.ListSince(ctx, sess.UserID, start)
	if err != nil {
		return nil, err
	}
	in := insight.InsightInput{Profile: sess.Profile}
	for _, m := range meals {
		in.CalorieIntake += float64(m.Calories)
	}
	for _, w := range water {
		in.WaterIntake += float64(w.AmountML)
	}
	return s.Suggest(ctx, in)
}
