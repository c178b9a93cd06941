package services

import (
	"errors"
	"testing"
	"time"

	"github.com/huwgoma/mini-diet-tracker/models"
)

func TestCreateFood(t *testing.T) {
	setupTestDB(t)

	food := mustCreateFood(t, "Banana", 100, 89, 1.1)
	if food.ID == 0 {
		t.Fatal("created food should have an id")
	}

	got, err := NewFoodService().Get(food.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Banana" || got.StandardPortion != 100 || got.Calories != 89 || got.Protein != 1.1 {
		t.Errorf("reloaded food mismatch: %+v", got)
	}
}

func TestCreateFoodFieldValidation(t *testing.T) {
	setupTestDB(t)

	cases := []struct {
		desc                        string
		name                        string
		portion, calories, protein  float64
		wantField                   string
	}{
		{"blank name", "   ", 100, 89, 1.1, "name"},
		{"zero portion", "Rice", 0, 130, 2.7, "standard_portion"},
		{"negative portion", "Rice", -5, 130, 2.7, "standard_portion"},
		{"portion over ceiling", "Rice", 100000000, 130, 2.7, "standard_portion"},
		{"zero calories", "Rice", 100, 0, 2.7, "calories"},
		{"calories over ceiling", "Rice", 100, 100000000, 2.7, "calories"},
		{"zero protein", "Rice", 100, 130, 0, "protein"},
		{"protein over ceiling", "Rice", 100, 130, 100000000, "protein"},
	}
	for _, tc := range cases {
		_, err := NewFoodService().Create(tc.name, tc.portion, tc.calories, tc.protein)
		var vErr *models.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("%s: got %v, want validation error", tc.desc, err)
			continue
		}
		if vErr.Field != tc.wantField {
			t.Errorf("%s: flagged field %q, want %q", tc.desc, vErr.Field, tc.wantField)
		}
	}
}

func TestFoodAttributeCeilingIsInclusive(t *testing.T) {
	setupTestDB(t)

	if _, err := NewFoodService().Create("Lard", 99999999.99, 99999999.99, 99999999.99); err != nil {
		t.Errorf("the declared max should be accepted, got %v", err)
	}
}

func TestFoodNameUniqueness(t *testing.T) {
	setupTestDB(t)

	banana := mustCreateFood(t, "Banana", 100, 89, 1.1)

	// case-insensitive collision
	_, err := NewFoodService().Create("banana", 50, 45, 0.5)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "name" {
		t.Errorf("duplicate name should fail on the name field, got %v", err)
	}

	unique, err := NewFoodService().IsNameUnique("Banana", 0)
	if err != nil {
		t.Fatal(err)
	}
	if unique {
		t.Error("IsNameUnique with no exclusion should report the taken name")
	}

	// a food never collides with itself during its own update
	unique, err = NewFoodService().IsNameUnique("Banana", banana.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !unique {
		t.Error("IsNameUnique excluding the food itself should be true")
	}
}

func TestUpdateFoodKeepsOwnName(t *testing.T) {
	setupTestDB(t)

	banana := mustCreateFood(t, "Banana", 100, 89, 1.1)
	updated, err := NewFoodService().Update(banana.ID, "Banana", 120, 105, 1.3)
	if err != nil {
		t.Fatalf("updating a food under its own name should succeed: %v", err)
	}
	if updated.StandardPortion != 120 {
		t.Errorf("standard portion not updated: %v", updated.StandardPortion)
	}
}

func TestUpdateFoodNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := NewFoodService().Update(999, "Ghost", 100, 50, 1)
	if !errors.Is(err, models.ErrFoodNotFound) {
		t.Errorf("got %v, want ErrFoodNotFound", err)
	}
}

func TestDeleteFoodRestrictedWhileReferenced(t *testing.T) {
	setupTestDB(t)

	banana := mustCreateFood(t, "Banana", 100, 89, 1.1)
	meal := mustCreateMeal(t, "Breakfast", time.Now())
	item, err := newItemService().Add(meal.ID, banana.ID, 150)
	if err != nil {
		t.Fatal(err)
	}

	err = NewFoodService().Delete(banana.ID)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("deleting a referenced food should be refused, got %v", err)
	}

	if err := newItemService().Delete(item.ID); err != nil {
		t.Fatal(err)
	}
	if err := NewFoodService().Delete(banana.ID); err != nil {
		t.Errorf("delete after the last reference is gone should succeed: %v", err)
	}
	if _, err := NewFoodService().Get(banana.ID); !errors.Is(err, models.ErrFoodNotFound) {
		t.Errorf("deleted food should be gone, got %v", err)
	}
}
