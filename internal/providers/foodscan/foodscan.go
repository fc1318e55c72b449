// Package foodscan recognizes a meal from a photo. Recognition is a
// placeholder that picks uniformly from a fixed food table.
package foodscan

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/faheemframes/healthyfi/internal/domain"
)

// Foods is the recognition table.
var Foods = []domain.FoodItem{
	{Name: "Pasta", Calories: 300},
	{Name: "Grilled Chicken", Calories: 250},
	{Name: "Caesar Salad", Calories: 180},
	{Name: "Pizza Slice", Calories: 285},
	{Name: "Fruit Bowl", Calories: 120},
	{Name: "Salmon Fillet", Calories: 350},
	{Name: "Rice Bowl", Calories: 220},
	{Name: "Veggie Wrap", Calories: 200},
}

// Recognizer identifies the food in an image.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (domain.FoodItem, error)
}

// Stub returns a random entry of Foods and ignores the image.
type Stub struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStub seeds from the runtime when src is nil.
func NewStub(src rand.Source) *Stub {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Stub{rng: rand.New(src)}
}

func (s *Stub) Recognize(ctx context.Context, _ []byte) (domain.FoodItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.FoodItem{}, err
	}
	s.mu.Lock()
	i := s.rng.IntN(len(Foods))
	s.mu.Unlock()
	return Foods[i], nil
}

var _ Recognizer = (*Stub)(nil)
