package main

import (
	"log"

	"odishaconnect/backend/internal/config"
	"odishaconnect/backend/internal/database"
)

func main() {
	config.LoadConfig()

	database.Connect(config.AppConfig.DatabaseURL)

	if err := database.SeedDemoData(database.DB); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}
