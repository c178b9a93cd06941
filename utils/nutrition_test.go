package utils

import (
	"errors"
	"math"
	"testing"
)

func TestAdjustNutrientIdentity(t *testing.T) {
	// serving == standard portion returns the declared value untouched
	cases := []struct{ value, portion float64 }{
		{89, 100},
		{1.1, 100},
		{0, 50},
		{250.5, 33.3},
	}
	for _, tc := range cases {
		got, err := AdjustNutrient(tc.value, tc.portion, tc.portion)
		if err != nil {
			t.Fatalf("AdjustNutrient(%v, %v, %v): %v", tc.value, tc.portion, tc.portion, err)
		}
		if got != tc.value {
			t.Errorf("AdjustNutrient(%v, %v, %v) = %v, want %v", tc.value, tc.portion, tc.portion, got, tc.value)
		}
	}
}

func TestAdjustNutrientZeroServing(t *testing.T) {
	got, err := AdjustNutrient(89, 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("zero serving should yield 0, got %v", got)
	}
}

func TestAdjustNutrientLinearity(t *testing.T) {
	single, err := AdjustNutrient(89, 75, 100)
	if err != nil {
		t.Fatal(err)
	}
	double, err := AdjustNutrient(89, 150, 100)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(double-2*single) > 1e-9 {
		t.Errorf("doubling the serving should double the value: %v vs 2*%v", double, single)
	}
}

func TestAdjustNutrientGuards(t *testing.T) {
	if _, err := AdjustNutrient(89, 100, 0); !errors.Is(err, ErrNonPositivePortion) {
		t.Errorf("zero portion: got %v, want ErrNonPositivePortion", err)
	}
	if _, err := AdjustNutrient(89, 100, -10); !errors.Is(err, ErrNonPositivePortion) {
		t.Errorf("negative portion: got %v, want ErrNonPositivePortion", err)
	}
	if _, err := AdjustNutrient(89, -1, 100); !errors.Is(err, ErrNegativeServing) {
		t.Errorf("negative serving: got %v, want ErrNegativeServing", err)
	}
}

func TestDisplayFormatting(t *testing.T) {
	if got := Grams(150); got != "150g" {
		t.Errorf("Grams(150) = %q", got)
	}
	if got := Grams(1.65); got != "1.65g" {
		t.Errorf("Grams(1.65) = %q", got)
	}
	if got := Kcal(89); got != "89kcal" {
		t.Errorf("Kcal(89) = %q", got)
	}
	if got := Kcal(133.5); got != "133.5kcal" {
		t.Errorf("Kcal(133.5) = %q", got)
	}
}
