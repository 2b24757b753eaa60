// main.go
//
// MealMind API - meal planning and food waste tracking data service

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/swagger"

	"github.com/mealmind/mealmind-api/internal/config"
	"github.com/mealmind/mealmind-api/internal/database"
	"github.com/mealmind/mealmind-api/internal/handlers"
	"github.com/mealmind/mealmind-api/internal/middleware"
	"github.com/mealmind/mealmind-api/internal/services"

	_ "github.com/mealmind/mealmind-api/docs/api" // Swagger docs
)

// @title MealMind API
// @version 1.0.0
// @description Meal planning and food waste tracking data service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/mealmind/mealmind-api

// @host localhost:4000
// @BasePath /api
// @schemes http https

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

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("mealmind")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Welcome page
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString("<h1>Welcome to the MealMind REST API</h1>")
	})

	// API routes under /api
	api := app.Group("/api")

	// Version negotiation
	api.Use(middleware.APIVersion())

	// Create handlers
	healthHandler := &handlers.HealthHandler{DB: db}
	inventoryHandler := &handlers.InventoryHandler{DB: db}
	mealPlanHandler := &handlers.MealPlanHandler{
		Generator: services.NewPlanGenerator(db, cfg.PlanRandSeed),
	}
	recipeHandler := &handlers.RecipeHandler{DB: db}
	catalogHandler := &handlers.CatalogHandler{DB: db}
	profileHandler := &handlers.ProfileHandler{DB: db}
	analyticsHandler := &handlers.AnalyticsHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db}

	// Health
	api.Get("/health", healthHandler.Check)

	// Inventory routes (user scoped)
	api.Get("/inventory-items", middleware.RequireUser(), inventoryHandler.ListInventory)
	api.Post("/inventory-items", inventoryHandler.AddInventory)
	api.Get("/inventory-items/expiring", middleware.RequireUser(), inventoryHandler.ListExpiring)
	api.Put("/inventory-items/:ingredientId", middleware.RequireUser(), inventoryHandler.UpdateInventory)
	api.Delete("/inventory-items/:ingredientId", middleware.RequireUser(), inventoryHandler.DeleteInventory)

	// Meal plan routes (user scoped)
	api.Get("/meal-plans", middleware.RequireUser(), mealPlanHandler.ListPlans)
	api.Post("/meal-plans", mealPlanHandler.CreatePlan)
	api.Get("/meal-plans/:planId", middleware.RequireUser(), mealPlanHandler.GetPlan)
	api.Delete("/meal-plans/:planId", middleware.RequireUser(), mealPlanHandler.DeletePlan)

	// Recipe routes
	api.Get("/recipes", recipeHandler.ListRecipes)
	api.Post("/recipes", recipeHandler.CreateRecipe)
	api.Get("/recipes/suggestions", middleware.RequireUser(), recipeHandler.SuggestRecipes)
	api.Get("/recipes/:recipeId", recipeHandler.GetRecipe)
	api.Put("/recipes/:recipeId", recipeHandler.UpdateRecipe)
	api.Delete("/recipes/:recipeId", recipeHandler.DeleteRecipe)

	// Favorite routes (user scoped)
	api.Get("/favorite-recipes", middleware.RequireUser(), recipeHandler.ListFavorites)
	api.Post("/favorite-recipes", recipeHandler.AddFavorite)
	api.Delete("/favorite-recipes/:recipeId", middleware.RequireUser(), recipeHandler.RemoveFavorite)

	// Catalog routes
	api.Get("/categories", catalogHandler.ListCategories)
	api.Post("/categories", catalogHandler.CreateCategory)
	api.Get("/ingredients", catalogHandler.ListIngredients)
	api.Post("/ingredients", catalogHandler.CreateIngredient)
	api.Put("/ingredients/:ingredientId", catalogHandler.UpdateIngredient)
	api.Delete("/ingredients/:ingredientId", catalogHandler.DeleteIngredient)

	// Profile routes (user scoped)
	api.Get("/diet-profile", middleware.RequireUser(), profileHandler.GetDietProfile)
	api.Post("/diet-profile", profileHandler.CreateDietProfile)
	api.Put("/diet-profile", profileHandler.UpdateDietProfile)
	api.Get("/budget-profile", middleware.RequireUser(), profileHandler.GetBudgetProfile)
	api.Post("/budget-profile", profileHandler.CreateBudgetProfile)
	api.Put("/budget-profile", profileHandler.UpdateBudgetProfile)

	// Analytics routes
	api.Get("/system-metrics", analyticsHandler.ListMetrics)
	api.Get("/system-metrics/:metricId/snapshots", analyticsHandler.ListSnapshots)
	api.Post("/system-metrics/:metricId/snapshots", analyticsHandler.RecordSnapshot)
	api.Get("/system-alerts", analyticsHandler.ListAlerts)
	api.Post("/system-alerts", analyticsHandler.CreateAlert)
	api.Get("/system-alerts/:alertId", analyticsHandler.GetAlert)
	api.Put("/system-alerts/:alertId", analyticsHandler.UpdateAlert)
	api.Get("/waste-statistics", analyticsHandler.ListWaste)
	api.Get("/recipe-usage-statistics", analyticsHandler.ListUsage)
	api.Get("/time-periods", analyticsHandler.ListPeriods)
	api.Get("/demographic-segments", analyticsHandler.ListSegments)
	api.Get("/data-quality-reports", analyticsHandler.DataQuality)
	api.Get("/analytics/reports", analyticsHandler.Report)

	// User directory routes
	api.Get("/users", userHandler.ListUsers)
	api.Get("/users/:userId", userHandler.GetUser)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "resource not found",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
