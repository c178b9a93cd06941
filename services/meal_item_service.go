package services

import (
	"errors"

	"github.com/huwgoma/mini-diet-tracker/config"
	"github.com/huwgoma/mini-diet-tracker/models"
	"github.com/huwgoma/mini-diet-tracker/utils"

	"gorm.io/gorm"
)

type MealItemService struct {
	foods *FoodService
	meals *MealService
}

func NewMealItemService(foods *FoodService, meals *MealService) *MealItemService {
	return &MealItemService{foods: foods, meals: meals}
}

// IsUnique reports whether no meal item other than excludingID carries
// the (mealID, foodID) pair. excludingID = 0 excludes nothing — the
// insert case; on update the item being edited doesn't count as its own
// collision.
func (s *MealItemService) IsUnique(excludingID, mealID, foodID uint) (bool, error) {
	return s.isUnique(config.DB, excludingID, mealID, foodID)
}

func (s *MealItemService) isUnique(db *gorm.DB, excludingID, mealID, foodID uint) (bool, error) {
	var count int64
	q := db.Model(&models.MealItem{}).Where("meal_id = ? AND food_id = ?", mealID, foodID)
	if excludingID != 0 {
		q = q.Where("id <> ?", excludingID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// ValidateForInsert runs the insert checks in order — serving size,
// pair uniqueness, meal existence, food existence — and returns the
// first failure. Serving size goes first: it's the cheapest check and
// the most common mistake.
func (s *MealItemService) ValidateForInsert(mealID, foodID uint, servingSize float64) error {
	return s.validateForInsert(config.DB, mealID, foodID, servingSize)
}

func (s *MealItemService) validateForInsert(db *gorm.DB, mealID, foodID uint, servingSize float64) error {
	if servingSize <= 0 {
		return models.NewValidationError("serving_size", "Serving size must be greater than 0.")
	}
	unique, err := s.isUnique(db, 0, mealID, foodID)
	if err != nil {
		return err
	}
	if !unique {
		return models.ErrDuplicateMealItem
	}
	ok, err := s.meals.exists(db, mealID)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrMealNotFound
	}
	ok, err = s.foods.exists(db, foodID)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrFoodNotFound
	}
	return nil
}

// ValidateForUpdate mirrors ValidateForInsert but excludes the item
// being edited from the collision check, so keeping its current food is
// always allowed. The meal is not re-checked — it was already resolved
// to load the item.
func (s *MealItemService) ValidateForUpdate(itemID, mealID, newFoodID uint, newServingSize float64) error {
	return s.validateForUpdate(config.DB, itemID, mealID, newFoodID, newServingSize)
}

func (s *MealItemService) validateForUpdate(db *gorm.DB, itemID, mealID, newFoodID uint, newServingSize float64) error {
	if newServingSize <= 0 {
		return models.NewValidationError("serving_size", "Serving size must be greater than 0.")
	}
	unique, err := s.isUnique(db, itemID, mealID, newFoodID)
	if err != nil {
		return err
	}
	if !unique {
		return models.ErrDuplicateMealItem
	}
	ok, err := s.foods.exists(db, newFoodID)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrFoodNotFound
	}
	return nil
}

// Add validates and inserts in one transaction; the unique index on
// (meal_id, food_id) backstops the check under concurrency.
func (s *MealItemService) Add(mealID, foodID uint, servingSize float64) (*models.MealItem, error) {
	item := &models.MealItem{MealID: mealID, FoodID: foodID, ServingSize: servingSize}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.validateForInsert(tx, mealID, foodID, servingSize); err != nil {
			return err
		}
		return tx.Create(item).Error
	})
	if err != nil {
		return nil, err
	}
	return s.withNutrition(item)
}

func (s *MealItemService) Update(itemID, newFoodID uint, newServingSize float64) (*models.MealItem, error) {
	var item models.MealItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMealItemNotFound
		}
		return nil, err
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.validateForUpdate(tx, item.ID, item.MealID, newFoodID, newServingSize); err != nil {
			return err
		}
		item.FoodID = newFoodID
		item.ServingSize = newServingSize
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return s.withNutrition(&item)
}

// Delete removes a meal item; unknown ids are a no-op.
func (s *MealItemService) Delete(itemID uint) error {
	return config.DB.Delete(&models.MealItem{}, itemID).Error
}

// withNutrition fills the item's derived fields from the current food
// row.
func (s *MealItemService) withNutrition(item *models.MealItem) (*models.MealItem, error) {
	food, err := s.foods.Get(item.FoodID)
	if err != nil {
		if errors.Is(err, models.ErrFoodNotFound) {
			return nil, &models.InconsistencyError{MealItemID: item.ID, FoodID: item.FoodID}
		}
		return nil, err
	}
	item.FoodName = food.Name
	if item.Calories, err = utils.AdjustNutrient(food.Calories, item.ServingSize, food.StandardPortion); err != nil {
		return nil, err
	}
	if item.Protein, err = utils.AdjustNutrient(food.Protein, item.ServingSize, food.StandardPortion); err != nil {
		return nil, err
	}
	return item, nil
}
