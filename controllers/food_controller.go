package controllers

import (
	"net/http"

	"github.com/huwgoma/mini-diet-tracker/services"

	"github.com/gin-gonic/gin"
)

type foodRequest struct {
	Name            string  `json:"name"`
	StandardPortion float64 `json:"standard_portion"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
}

// GET /foods
func ListFoods(c *gin.Context) {
	foods, err := services.NewFoodService().List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /foods/:id
func GetFood(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	food, err := services.NewFoodService().Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// POST /foods
func CreateFood(c *gin.Context) {
	var body foodRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	food, err := services.NewFoodService().Create(body.Name, body.StandardPortion, body.Calories, body.Protein)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

// PUT /foods/:id
func UpdateFood(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body foodRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	food, err := services.NewFoodService().Update(id, body.Name, body.StandardPortion, body.Calories, body.Protein)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// DELETE /foods/:id — refused while any meal still references the food
func DeleteFood(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := services.NewFoodService().Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
