package bmi

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category is the BMI band a measurement falls into.
type Category string

// Category constants
const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObesity     Category = "Obesity"
)

// Categories lists every category in ascending BMI order.
var Categories = []Category{CategoryUnderweight, CategoryNormal, CategoryOverweight, CategoryObesity}

// Lower bounds (inclusive) of the Normal, Overweight and Obesity bands.
const (
	NormalFrom     = 18.5
	OverweightFrom = 25.0
	ObesityFrom    = 30.0
)

// ErrInvalidInput is returned for missing, non-numeric or non-positive measurements.
var ErrInvalidInput = errors.New("weight and height must be positive numbers")

// Result is a computed classification. It is never persisted.
type Result struct {
	BMI      float64
	Category Category
}

// Measurements is a validated weight/height pair.
type Measurements struct {
	WeightKg float64
	HeightCm float64
}

// ParseMeasurements converts raw form values into validated measurements.
// PRE: none
// POST: returns ErrInvalidInput (wrapped) unless both values parse as finite numbers greater than zero
func ParseMeasurements(weight, height string) (Measurements, error) {
	w, err := parsePositive("weight", weight)
	if err != nil {
		return Measurements{}, err
	}
	h, err := parsePositive("height", height)
	if err != nil {
		return Measurements{}, err
	}
	return Measurements{WeightKg: w, HeightCm: h}, nil
}

func parsePositive(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required: %w", field, ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number: %w", field, raw, ErrInvalidInput)
	}
	if !isPositiveFinite(v) {
		return 0, fmt.Errorf("%s must be greater than zero: %w", field, ErrInvalidInput)
	}
	return v, nil
}

// Classify computes the BMI for weightKg and heightCm and assigns its category.
// PRE: weightKg > 0, heightCm > 0
// POST: returns ErrInvalidInput without dividing when either input is non-positive or not finite
// INVARIANT: deterministic, no side effects
func Classify(weightKg, heightCm float64) (Result, error) {
	if !isPositiveFinite(weightKg) || !isPositiveFinite(heightCm) {
		return Result{}, ErrInvalidInput
	}
	heightM := heightCm / 100
	value := weightKg / (heightM * heightM)
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return Result{}, ErrInvalidInput
	}
	return Result{BMI: value, Category: CategoryFor(value)}, nil
}

// Classify is a convenience wrapper over the package-level Classify.
func (m Measurements) Classify() (Result, error) {
	return Classify(m.WeightKg, m.HeightCm)
}

// CategoryFor maps a BMI value onto its band. Bands are lower-inclusive.
func CategoryFor(value float64) Category {
	switch {
	case value < NormalFrom:
		return CategoryUnderweight
	case value < OverweightFrom:
		return CategoryNormal
	case value < ObesityFrom:
		return CategoryOverweight
	default:
		return CategoryObesity
	}
}

// Rounded returns the BMI rounded to two decimals for display.
func (r Result) Rounded() float64 {
	return math.Round(r.BMI*100) / 100
}

// IsValid reports whether c is one of the four known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
