package models

import "time"

// One logged Meal (breakfast/lunch/…)
type Meal struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Memo      string     `gorm:"not null" json:"memo"`
	LoggedAt  time.Time  `gorm:"not null;index" json:"logged_at"`
	Items     []MealItem `json:"items,omitempty"`

	// Derived per load — summed over Items, never stored.
	TotalCalories float64  `gorm:"-" json:"total_calories"`
	TotalProtein  float64  `gorm:"-" json:"total_protein"`
	FoodNames     []string `gorm:"-" json:"food_names"`
}

// MealItem links one food to one meal at a serving size. A food may
// appear at most once per meal; the composite index backs the
// application-level uniqueness check so two concurrent inserts can't
// both slip through. Hard-deleted for the same reason as Food: a
// soft-deleted row would keep holding the (meal_id, food_id) slot.
type MealItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	MealID      uint      `gorm:"not null;uniqueIndex:idx_meal_items_meal_food" json:"meal_id"`
	FoodID      uint      `gorm:"not null;uniqueIndex:idx_meal_items_meal_food" json:"food_id"`
	ServingSize float64   `gorm:"not null" json:"serving_size"` // grams

	// Derived per load — recomputed from the current Food row, never cached.
	FoodName string  `gorm:"-" json:"food_name,omitempty"`
	Calories float64 `gorm:"-" json:"calories"`
	Protein  float64 `gorm:"-" json:"protein"`
}
