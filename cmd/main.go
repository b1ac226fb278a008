package main

import (
	"context"
	"log"
	"os"

	"github.com/Muskanagrawal2005/AyuBalance/config"
	"github.com/Muskanagrawal2005/AyuBalance/routes"
	"github.com/Muskanagrawal2005/AyuBalance/services"
)

func main() {
	config.InitDB()

	// Make sure a fresh deployment has a usable food catalog.
	if err := services.NewFoodService(config.DB).SeedDefaults(context.Background()); err != nil {
		log.Fatalf("seeding food catalog failed: %v", err)
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
