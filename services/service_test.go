package services

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/huwgoma/mini-diet-tracker/config"
	"github.com/huwgoma/mini-diet-tracker/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a throwaway sqlite database so the
// services run against a real store, schema included.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Food{}, &models.Meal{}, &models.MealItem{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	config.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

func mustCreateFood(t *testing.T, name string, portion, calories, protein float64) *models.Food {
	t.Helper()
	food, err := NewFoodService().Create(name, portion, calories, protein)
	if err != nil {
		t.Fatalf("create food %q: %v", name, err)
	}
	return food
}

func mustCreateMeal(t *testing.T, memo string, loggedAt time.Time) *models.Meal {
	t.Helper()
	meal, err := NewMealService().Create(memo, loggedAt)
	if err != nil {
		t.Fatalf("create meal %q: %v", memo, err)
	}
	return meal
}

func newItemService() *MealItemService {
	return NewMealItemService(NewFoodService(), NewMealService())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
