package domain

import "time"

// Metric identifies which daily intake a record contributes to.
type Metric string

const (
	MetricCalories Metric = "CALORIES"
	MetricWaterML  Metric = "WATER_ML"
)

// IntakeRecord is a single timestamped intake value read from the store.
type IntakeRecord struct {
	Time   time.Time
	Value  float64
	Metric Metric
}

// Meal is a row of the meals table.
type Meal struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Time     time.Time `json:"time"`
}

// Record converts the meal into a calorie intake record.
func (m Meal) Record() IntakeRecord {
	return IntakeRecord{Time: m.Time, Value: float64(m.Calories), Metric: MetricCalories}
}

// WaterIntake is a row of the water_intake table.
type WaterIntake struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	AmountML int       `json:"amount_ml"`
	Time     time.Time `json:"time"`
}

// Record converts the intake into a water intake record.
func (w WaterIntake) Record() IntakeRecord {
	return IntakeRecord{Time: w.Time, Value: float64(w.AmountML), Metric: MetricWaterML}
}

// DayBucket is the derived per-day total shown on the weekly chart.
type DayBucket struct {
	Day      string    `json:"day"`
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
	WaterML  float64   `json:"water"`
}

// FoodItem is a named food with its calorie estimate.
type FoodItem struct {
	Name     string `json:"food_name"`
	Calories int    `json:"calories"`
}
