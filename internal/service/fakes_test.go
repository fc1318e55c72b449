package service

import (
	"context"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

type fakeMeals struct {
	meals   []domain.Meal
	err     error
	since   time.Time
	created []domain.Meal
}

func (f *fakeMeals) Create(_ context.Context, m *domain.Meal) error {
	if f.err != nil {
		return f.err
	}
	m.ID = "meal-new"
	f.created = append(f.created, *m)
	return nil
}

func (f *fakeMeals) ListSince(_ context.Context, _ string, since time.Time) ([]domain.Meal, error) {
	f.since = since
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Meal
	for _, m := range f.meals {
		if !m.Time.Before(since) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeWater struct {
	intakes []domain.WaterIntake
	err     error
	created []domain.WaterIntake
}

func (f *fakeWater) Create(_ context.Context, w *domain.WaterIntake) error {
	if f.err != nil {
		return f.err
	}
	w.ID = "water-new"
	f.created = append(f.created, *w)
	return nil
}

func (f *fakeWater) ListSince(_ context.Context, _ string, since time.Time) ([]domain.WaterIntake, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.WaterIntake
	for _, w := range f.intakes {
		if !w.Time.Before(since) {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeProfiles struct {
	profile *domain.Profile
	err     error
	saved   *domain.Profile
}

func (f *fakeProfiles) Get(context.Context, string) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil {
		return nil, domain.ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeProfiles) Upsert(_ context.Context, p *domain.Profile) error {
	if f.err != nil {
		return f.err
	}
	f.saved = p
	return nil
}

type fakeReminders struct {
	items   []domain.Reminder
	deleted []string
	err     error
}

func (f *fakeReminders) List(context.Context, string) ([]domain.Reminder, error) {
	return f.items, f.err
}

func (f *fakeReminders) Create(_ context.Context, r *domain.Reminder) error {
	if f.err != nil {
		return f.err
	}
	r.ID = "rem-new"
	f.items = append(f.items, *r)
	return nil
}

func (f *fakeReminders) Delete(_ context.Context, _ string, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSuggester struct {
	payload insight.Payload
	err     error
	got     insight.InsightRequest
}

func (f *fakeSuggester) Suggest(_ context.Context, req insight.InsightRequest) (insight.Payload, error) {
	f.got = req
	return f.payload, f.err
}

func ptr[T any](v T) *T { return &v }
