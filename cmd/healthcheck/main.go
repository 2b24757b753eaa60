// main.go
//
// MealMind API - meal planning and food waste tracking data service
//
// Container healthcheck binary. Prints a JSON health result and exits
// nonzero when the database is unreachable.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/mealmind/mealmind-api/internal/config"
	"github.com/mealmind/mealmind-api/internal/database"
	"github.com/mealmind/mealmind-api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(cfg, db)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
