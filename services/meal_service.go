package services

import (
	"errors"
	"strings"
	"time"

	"github.com/huwgoma/mini-diet-tracker/config"
	"github.com/huwgoma/mini-diet-tracker/models"
	"github.com/huwgoma/mini-diet-tracker/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// one row of the meal_items ⨝ foods join; JoinedFoodID is NULL when the
// food row is gone (dangling reference)
type mealItemRow struct {
	ID              uint
	MealID          uint
	FoodID          uint
	ServingSize     float64
	JoinedFoodID    *uint
	FoodName        string
	StandardPortion float64
	FoodCalories    float64
	FoodProtein     float64
}

// Get loads one meal with its items, summed totals, and the food names
// in item-insertion order. A meal with no items comes back with totals
// of exactly 0 and an empty name list.
func (s *MealService) Get(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMealNotFound
		}
		return nil, err
	}

	byMeal, err := s.itemsForMeals([]uint{meal.ID})
	if err != nil {
		return nil, err
	}
	s.attachItems(&meal, byMeal[meal.ID])
	return &meal, nil
}

// ListForDate returns the meals logged on the given calendar day in the
// server's local time, each with totals, ordered by logged-at time.
func (s *MealService) ListForDate(date time.Time) ([]models.Meal, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	err := config.DB.
		Where("logged_at >= ? AND logged_at < ?", start, end).
		Order("logged_at").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return []models.Meal{}, nil
	}

	ids := make([]uint, len(meals))
	for i, m := range meals {
		ids[i] = m.ID
	}
	byMeal, err := s.itemsForMeals(ids)
	if err != nil {
		return nil, err
	}
	for i := range meals {
		s.attachItems(&meals[i], byMeal[meals[i].ID])
	}
	return meals, nil
}

// ListItems returns the meal's items in creation order with adjusted
// nutrition attached.
func (s *MealService) ListItems(mealID uint) ([]models.MealItem, error) {
	ok, err := s.exists(config.DB, mealID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrMealNotFound
	}
	byMeal, err := s.itemsForMeals([]uint{mealID})
	if err != nil {
		return nil, err
	}
	items := byMeal[mealID]
	if items == nil {
		items = []models.MealItem{}
	}
	return items, nil
}

func (s *MealService) Create(memo string, loggedAt time.Time) (*models.Meal, error) {
	if err := validateMeal(memo, loggedAt); err != nil {
		return nil, err
	}
	meal := &models.Meal{Memo: strings.TrimSpace(memo), LoggedAt: loggedAt}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	s.attachItems(meal, nil)
	return meal, nil
}

func (s *MealService) Update(id uint, memo string, loggedAt time.Time) (*models.Meal, error) {
	if err := validateMeal(memo, loggedAt); err != nil {
		return nil, err
	}

	var meal models.Meal
	if err := config.DB.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMealNotFound
		}
		return nil, err
	}
	meal.Memo = strings.TrimSpace(memo)
	meal.LoggedAt = loggedAt
	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return s.Get(meal.ID)
}

// Delete removes a meal and its items in one transaction. Deleting an
// id that no longer exists is not an error.
func (s *MealService) Delete(id uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Meal{}, id).Error
	})
}

func validateMeal(memo string, loggedAt time.Time) error {
	if strings.TrimSpace(memo) == "" {
		return models.NewValidationError("memo", "Memo can't be blank.")
	}
	if loggedAt.IsZero() {
		return models.NewValidationError("logged_at", "Logged-at time is required.")
	}
	return nil
}

// itemsForMeals runs the single LEFT JOIN through foods for every meal
// in ids and returns each meal's items, in creation order, with
// per-item nutrition scaled to the logged serving size. A live item
// whose food row has vanished is a dangling reference: that's store
// corruption, not user input, so it is logged as a fault and reported
// as an InconsistencyError.
func (s *MealService) itemsForMeals(ids []uint) (map[uint][]models.MealItem, error) {
	var rows []mealItemRow
	err := config.DB.Table("meal_items").
		Select("meal_items.id, meal_items.meal_id, meal_items.food_id, meal_items.serving_size, "+
			"foods.id AS joined_food_id, foods.name AS food_name, foods.standard_portion, "+
			"foods.calories AS food_calories, foods.protein AS food_protein").
		Joins("LEFT JOIN foods ON foods.id = meal_items.food_id").
		Where("meal_items.meal_id IN ?", ids).
		Order("meal_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byMeal := make(map[uint][]models.MealItem, len(ids))
	for _, row := range rows {
		if row.JoinedFoodID == nil {
			logrus.WithFields(logrus.Fields{
				"meal_item_id": row.ID,
				"food_id":      row.FoodID,
			}).Error("meal item references missing food")
			return nil, &models.InconsistencyError{MealItemID: row.ID, FoodID: row.FoodID}
		}

		calories, err := utils.AdjustNutrient(row.FoodCalories, row.ServingSize, row.StandardPortion)
		if err != nil {
			return nil, err
		}
		protein, err := utils.AdjustNutrient(row.FoodProtein, row.ServingSize, row.StandardPortion)
		if err != nil {
			return nil, err
		}

		byMeal[row.MealID] = append(byMeal[row.MealID], models.MealItem{
			ID:          row.ID,
			MealID:      row.MealID,
			FoodID:      row.FoodID,
			ServingSize: row.ServingSize,
			FoodName:    row.FoodName,
			Calories:    calories,
			Protein:     protein,
		})
	}
	return byMeal, nil
}

// attachItems fills the meal's derived fields from its loaded items.
func (s *MealService) attachItems(meal *models.Meal, items []models.MealItem) {
	if items == nil {
		items = []models.MealItem{}
	}
	meal.Items = items
	meal.TotalCalories = 0
	meal.TotalProtein = 0
	meal.FoodNames = make([]string, 0, len(items))
	for _, it := range items {
		meal.TotalCalories += it.Calories
		meal.TotalProtein += it.Protein
		meal.FoodNames = append(meal.FoodNames, it.FoodName)
	}
}

func (s *MealService) exists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Meal{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
