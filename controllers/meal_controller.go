package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/huwgoma/mini-diet-tracker/models"
	"github.com/huwgoma/mini-diet-tracker/services"

	"github.com/gin-gonic/gin"
)

type mealRequest struct {
	Memo     string    `json:"memo"`
	LoggedAt time.Time `json:"logged_at"`
}

// mealView adds the comma-joined food summary for display on top of
// the ordered name list.
type mealView struct {
	*models.Meal
	FoodSummary string `json:"food_summary"`
}

func toMealView(meal *models.Meal) mealView {
	return mealView{Meal: meal, FoodSummary: strings.Join(meal.FoodNames, ", ")}
}

// GET /meals?date=2006-01-02 (defaults to today)
func ListMeals(c *gin.Context) {
	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	meals, err := services.NewMealService().ListForDate(date)
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]mealView, len(meals))
	for i := range meals {
		views[i] = toMealView(&meals[i])
	}
	c.JSON(http.StatusOK, views)
}

// GET /meals/:id
func GetMeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	meal, err := services.NewMealService().Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMealView(meal))
}

// POST /meals
func CreateMeal(c *gin.Context) {
	var body mealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	meal, err := services.NewMealService().Create(body.Memo, body.LoggedAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMealView(meal))
}

// PUT /meals/:id
func UpdateMeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body mealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	meal, err := services.NewMealService().Update(id, body.Memo, body.LoggedAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMealView(meal))
}

// DELETE /meals/:id — idempotent, cascades to the meal's items
func DeleteMeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := services.NewMealService().Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
