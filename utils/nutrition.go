package utils

import (
	"errors"
	"strconv"
)

var (
	ErrNonPositivePortion = errors.New("standard portion must be positive")
	ErrNegativeServing    = errors.New("serving size cannot be negative")
)

// AdjustNutrient scales a nutrient value declared at standardPortion
// grams to the requested serving size. A zero serving yields zero; a
// non-positive standard portion is a programming error and never
// silently produces 0 or NaN. No rounding — display formatting is the
// caller's concern. Works the same for calories and protein, one
// scalar at a time.
func AdjustNutrient(value, servingSize, standardPortion float64) (float64, error) {
	if standardPortion <= 0 {
		return 0, ErrNonPositivePortion
	}
	if servingSize < 0 {
		return 0, ErrNegativeServing
	}
	return value * (servingSize / standardPortion), nil
}

// Grams formats a gram amount for display, e.g. "150g".
func Grams(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "g"
}

// Kcal formats a calorie amount for display, e.g. "89kcal".
func Kcal(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "kcal"
}
