package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/huwgoma/mini-diet-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors onto status codes: validation
// problems (including duplicate meal items) are user-recoverable 422s,
// missing records are 404s, everything else — inconsistencies, store
// failures — is a logged 500.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message, "field": vErr.Field})
		return
	}

	switch {
	case errors.Is(err, models.ErrMealNotFound),
		errors.Is(err, models.ErrFoodNotFound),
		errors.Is(err, models.ErrMealItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		var incErr *models.InconsistencyError
		if errors.As(err, &incErr) {
			logrus.WithFields(logrus.Fields{
				"meal_item_id": incErr.MealItemID,
				"food_id":      incErr.FoodID,
			}).Error("data inconsistency")
		} else {
			logrus.WithError(err).Error("request failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
