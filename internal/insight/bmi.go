package insight

import (
	"math"

	"github.com/faheemframes/healthyfi/internal/domain"
)

// BMICategory is the WHO adult band for a BMI value.
type BMICategory string

const (
	Underweight BMICategory = "Underweight"
	Normal      BMICategory = "Normal"
	Overweight  BMICategory = "Overweight"
	Obese       BMICategory = "Obese"
)

// ComputeBMI returns weight / height(m)^2. ok is false when either input is
// missing or not positive; callers must not treat the zero value as a BMI.
func ComputeBMI(heightCm, weightKg *float64) (bmi float64, ok bool) {
	if heightCm == nil || weightKg == nil {
		return 0, false
	}
	h, w := *heightCm, *weightKg
	if !(h > 0) || !(w > 0) || math.IsInf(h, 0) || math.IsInf(w, 0) {
		return 0, false
	}
	m := h / 100
	return w / (m * m), true
}

// CategorizeBMI places boundary values in the higher category.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// BMIReading is the serialisable BMI summary; it is omitted entirely when
// BMI is unavailable.
type BMIReading struct {
	Value    float64     `json:"value"`
	Category BMICategory `json:"category"`
}

// ReadBMI returns nil when BMI is unavailable.
func ReadBMI(body domain.BodyMetricsInput) *BMIReading {
	bmi, ok := ComputeBMI(body.HeightCm, body.WeightKg)
	if !ok {
		return nil
	}
	return &BMIReading{Value: math.Round(bmi*10) / 10, Category: CategorizeBMI(bmi)}
}
