package main

import (
	"os"

	"github.com/huwgoma/mini-diet-tracker/config"
	"github.com/huwgoma/mini-diet-tracker/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
