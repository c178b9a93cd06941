package services

import (
	"errors"
	"strings"

	"github.com/huwgoma/mini-diet-tracker/config"
	"github.com/huwgoma/mini-diet-tracker/models"

	"gorm.io/gorm"
)

// Foods store their nutrition with two decimal places, up to a
// 10-digit NUMERIC(10,2) ceiling.
const maxFoodAttribute = 99999999.99

type FoodService struct{}

func NewFoodService() *FoodService {
	return &FoodService{}
}

func (s *FoodService) List() ([]models.Food, error) {
	var foods []models.Food
	err := config.DB.Order("name").Find(&foods).Error
	return foods, err
}

func (s *FoodService) Get(id uint) (*models.Food, error) {
	var food models.Food
	if err := config.DB.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

// IsNameUnique reports whether no other food row carries this name,
// compared case-insensitively. excludingID = 0 checks against every
// row (create); a non-zero excludingID leaves out the food being
// updated so it never collides with itself.
func (s *FoodService) IsNameUnique(name string, excludingID uint) (bool, error) {
	return s.isNameUnique(config.DB, name, excludingID)
}

func (s *FoodService) isNameUnique(db *gorm.DB, name string, excludingID uint) (bool, error) {
	var count int64
	q := db.Model(&models.Food{}).Where("LOWER(name) = LOWER(?)", name)
	if excludingID != 0 {
		q = q.Where("id <> ?", excludingID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *FoodService) Create(name string, standardPortion, calories, protein float64) (*models.Food, error) {
	food := &models.Food{
		Name:            strings.TrimSpace(name),
		StandardPortion: standardPortion,
		Calories:        calories,
		Protein:         protein,
	}

	// Uniqueness check and insert share one transaction so a concurrent
	// create can't pass the check twice.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.validate(tx, food, 0); err != nil {
			return err
		}
		return tx.Create(food).Error
	})
	if err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Update(id uint, name string, standardPortion, calories, protein float64) (*models.Food, error) {
	var food models.Food
	if err := config.DB.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrFoodNotFound
		}
		return nil, err
	}

	food.Name = strings.TrimSpace(name)
	food.StandardPortion = standardPortion
	food.Calories = calories
	food.Protein = protein

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.validate(tx, &food, food.ID); err != nil {
			return err
		}
		return tx.Save(&food).Error
	})
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// Delete refuses to remove a food that existing meal items still
// reference; orphaned items would surface later as inconsistencies
// during aggregation. Deleting an unknown id is a no-op.
func (s *FoodService) Delete(id uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.MealItem{}).Where("food_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return models.NewValidationError("food", "Food is still part of one or more meals and can't be deleted.")
		}
		return tx.Delete(&models.Food{}, id).Error
	})
}

// validate checks the fields in a fixed order and reports the first
// offender: blank name, taken name, then each attribute range.
func (s *FoodService) validate(db *gorm.DB, food *models.Food, excludingID uint) error {
	if food.Name == "" {
		return models.NewValidationError("name", "Name can't be blank.")
	}
	unique, err := s.isNameUnique(db, food.Name, excludingID)
	if err != nil {
		return err
	}
	if !unique {
		return models.NewValidationError("name", "Name has already been taken.")
	}
	if food.StandardPortion <= 0 || food.StandardPortion > maxFoodAttribute {
		return models.NewValidationError("standard_portion", "Standard portion must be greater than 0 and at most 99999999.99.")
	}
	if food.Calories <= 0 || food.Calories > maxFoodAttribute {
		return models.NewValidationError("calories", "Calories must be greater than 0 and at most 99999999.99.")
	}
	if food.Protein <= 0 || food.Protein > maxFoodAttribute {
		return models.NewValidationError("protein", "Protein must be greater than 0 and at most 99999999.99.")
	}
	return nil
}

func (s *FoodService) exists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Food{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
