package httpapi_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

// memStore is an in-memory implementation of every repository.
type memStore struct {
	mu        sync.Mutex
	meals     []domain.Meal
	water     []domain.WaterIntake
	profiles  map[string]domain.Profile
	reminders []domain.Reminder
	failMeals error
}

func newMemStore() *memStore {
	return &memStore{profiles: map[string]domain.Profile{}}
}

type memMeals struct{ *memStore }
type memWater struct{ *memStore }
type memProfiles struct{ *memStore }
type memReminders struct{ *memStore }

func (s memMeals) Create(_ context.Context, m *domain.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.NewString()
	if m.Time.IsZero() {
		m.Time = time.Now()
	}
	s.meals = append(s.meals, *m)
	return nil
}

func (s memMeals) ListSince(_ context.Context, userID string, since time.Time) ([]domain.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMeals != nil {
		return nil, s.failMeals
	}
	var out []domain.Meal
	for _, m := range s.meals {
		if m.UserID == userID && !m.Time.Before(since) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, nil
}

func (s memWater) Create(_ context.Context, w *domain.WaterIntake) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID = uuid.NewString()
	if w.Time.IsZero() {
		w.Time = time.Now()
	}
	s.water = append(s.water, *w)
	return nil
}

func (s memWater) ListSince(_ context.Context, userID string, since time.Time) ([]domain.WaterIntake, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.WaterIntake
	for _, w := range s.water {
		if w.UserID == userID && !w.Time.Before(since) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s memProfiles) Get(_ context.Context, userID string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s memProfiles) Upsert(_ context.Context, p *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = *p
	return nil
}

func (s memReminders) List(_ context.Context, userID string) ([]domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Reminder
	for _, r := range s.reminders {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s memReminders) Create(_ context.Context, r *domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now()
	s.reminders = append(s.reminders, *r)
	return nil
}

func (s memReminders) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reminders {
		if r.ID == id && r.UserID == userID {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// stubSuggester returns a fixed payload or error and records the last prompt.
type stubSuggester struct {
	payload insight.Payload
	err     error
	last    insight.InsightRequest
}

func (s *stubSuggester) Suggest(_ context.Context, req insight.InsightRequest) (insight.Payload, error) {
	s.last = req
	return s.payload, s.err
}

// fixedFood always recognizes the same food.
type fixedFood struct{ item domain.FoodItem }

func (f fixedFood) Recognize(context.Context, []byte) (domain.FoodItem, error) {
	return f.item, nil
}
