package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/faheemframes/healthyfi/internal/domain"
)

// ProfileService reads and validates user profiles.
type ProfileService struct {
	repo domain.ProfileRepository
}

func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Load returns nil without error when the user has no profile yet.
func (s *ProfileService) Load(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Save validates and upserts the profile for the session user.
func (s *ProfileService) Save(ctx context.Context, sess domain.SessionContext, p domain.Profile) (*domain.Profile, error) {
	p.UserID = sess.UserID
	if err := ValidateProfile(&p); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ValidateProfile checks ranges and enum values. Blank optional strings are
// normalized to nil.
func ValidateProfile(p *domain.Profile) error {
	p.Gender = normalize(p.Gender)
	p.ActivityLevel = normalize(p.ActivityLevel)
	p.Goal = normalize(p.Goal)

	var problems []string
	if p.HeightCm != nil && (*p.HeightCm <= 0 || *p.HeightCm > 300) {
		problems = append(problems, "height_cm must be between 0 and 300")
	}
	if p.WeightKg != nil && (*p.WeightKg <= 0 || *p.WeightKg > 500) {
		problems = append(problems, "weight_kg must be between 0 and 500")
	}
	if p.Age != nil && (*p.Age <= 0 || *p.Age > 150) {
		problems = append(problems, "age must be between 1 and 150")
	}
	if p.Gender != nil {
		switch *p.Gender {
		case "male", "female", "other":
		default:
			problems = append(problems, "gender must be male, female or other")
		}
	}
	if p.ActivityLevel != nil && !domain.ActivityLevel(*p.ActivityLevel).IsValid() {
		problems = append(problems, "activity_level is not recognized")
	}
	if p.Goal != nil && !domain.GoalType(*p.Goal).IsValid() {
		problems = append(problems, "goal is not recognized")
	}
	if p.DailyCalorieGoal != nil && *p.DailyCalorieGoal < 0 {
		problems = append(problems, "daily_calorie_goal must not be negative")
	}
	if p.DailyWaterGoalML != nil && *p.DailyWaterGoalML < 0 {
		problems = append(problems, "daily_water_goal_ml must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	if v == "" {
		return nil
	}
	return &v
}
