package routes

import (
	"github.com/huwgoma/mini-diet-tracker/controllers"
	"github.com/huwgoma/mini-diet-tracker/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())

	foods := r.Group("/foods")
	{
		foods.GET("", controllers.ListFoods)
		foods.POST("", controllers.CreateFood)
		foods.GET("/:id", controllers.GetFood)
		foods.PUT("/:id", controllers.UpdateFood)
		foods.DELETE("/:id", controllers.DeleteFood)
	}

	meals := r.Group("/meals")
	{
		meals.GET("", controllers.ListMeals)
		meals.POST("", controllers.CreateMeal)
		meals.GET("/:id", controllers.GetMeal)
		meals.PUT("/:id", controllers.UpdateMeal)
		meals.DELETE("/:id", controllers.DeleteMeal)
		meals.GET("/:id/items", controllers.ListMealItems)
		meals.POST("/:id/items", controllers.AddMealItem)
	}

	items := r.Group("/items")
	{
		items.PUT("/:id", controllers.UpdateMealItem)
		items.DELETE("/:id", controllers.DeleteMealItem)
	}

	return r
}
