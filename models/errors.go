package models

import (
	"errors"
	"fmt"
)

var (
	ErrMealNotFound     = errors.New("meal not found")
	ErrFoodNotFound     = errors.New("food not found")
	ErrMealItemNotFound = errors.New("meal item not found")
)

// ValidationError is a recoverable, user-facing input error attributed
// to a single field. It is surfaced to the caller and never logged as
// a system fault.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"error"`
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrDuplicateMealItem is the collision case: the same food linked
// twice to one meal. Compared with errors.Is at the handler boundary.
var ErrDuplicateMealItem = &ValidationError{
	Field:   "food_id",
	Message: "You can't add the same food twice to the same meal.",
}

// InconsistencyError means a meal item references a food row that no
// longer exists. That is store corruption or a missed cascade, not user
// input, so it is reported as a system fault rather than a validation
// message.
type InconsistencyError struct {
	MealItemID uint
	FoodID     uint
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("meal item %d references missing food %d", e.MealItemID, e.FoodID)
}
