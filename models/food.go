package models

import "time"

// A food in the catalog. Calories and Protein are the values at
// StandardPortion grams; logged servings are scaled from them.
// Rows are hard-deleted: a soft-deleted food would keep occupying the
// unique name index and block re-creating the name.
type Food struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Name            string    `gorm:"uniqueIndex;not null" json:"name"`
	StandardPortion float64   `gorm:"not null" json:"standard_portion"` // grams
	Calories        float64   `gorm:"not null" json:"calories"`
	Protein         float64   `gorm:"not null" json:"protein"`
}
