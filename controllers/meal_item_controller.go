package controllers

import (
	"net/http"

	"github.com/huwgoma/mini-diet-tracker/models"
	"github.com/huwgoma/mini-diet-tracker/services"
	"github.com/huwgoma/mini-diet-tracker/utils"

	"github.com/gin-gonic/gin"
)

type mealItemRequest struct {
	FoodID      uint    `json:"food_id"`
	ServingSize float64 `json:"serving_size"`
}

// mealItemView carries the formatted display strings next to the raw
// values ("150g", "133.5kcal", "1.65g Protein").
type mealItemView struct {
	models.MealItem
	ServingDisplay  string `json:"serving_display"`
	CaloriesDisplay string `json:"calories_display"`
	ProteinDisplay  string `json:"protein_display"`
}

func toMealItemView(item models.MealItem) mealItemView {
	return mealItemView{
		MealItem:        item,
		ServingDisplay:  utils.Grams(item.ServingSize),
		CaloriesDisplay: utils.Kcal(item.Calories),
		ProteinDisplay:  utils.Grams(item.Protein) + " Protein",
	}
}

func newMealItemService() *services.MealItemService {
	return services.NewMealItemService(services.NewFoodService(), services.NewMealService())
}

// GET /meals/:id/items
func ListMealItems(c *gin.Context) {
	mealID, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := services.NewMealService().ListItems(mealID)
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]mealItemView, len(items))
	for i, it := range items {
		views[i] = toMealItemView(it)
	}
	c.JSON(http.StatusOK, views)
}

// POST /meals/:id/items
func AddMealItem(c *gin.Context) {
	mealID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body mealItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	item, err := newMealItemService().Add(mealID, body.FoodID, body.ServingSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMealItemView(*item))
}

// PUT /items/:id
func UpdateMealItem(c *gin.Context) {
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body mealItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	item, err := newMealItemService().Update(itemID, body.FoodID, body.ServingSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMealItemView(*item))
}

// DELETE /items/:id
func DeleteMealItem(c *gin.Context) {
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := newMealItemService().Delete(itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
