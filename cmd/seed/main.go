// main.go
//
// MealMind API - meal planning and food waste tracking data service
//
// Development seeder. Populates the configured database with a small
// demo dataset. -init applies the MariaDB DDL before seeding instead of
// relying on auto-migration.

package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/mealmind/mealmind-api/data"
	"github.com/mealmind/mealmind-api/internal/config"
	"github.com/mealmind/mealmind-api/internal/database"
	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	initDDL := flag.Bool("init", false, "apply the MariaDB DDL before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if *initDDL {
		if cfg.DBType != "mysql" && cfg.DBType != "mariadb" {
			log.Fatalf("-init requires a mysql/mariadb database, got %s", cfg.DBType)
		}
		for _, stmt := range strings.Split(data.InitdbMariaDBTables, ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" || strings.HasPrefix(stmt, "--") {
				continue
			}
			if err := db.Exec(stmt).Error; err != nil {
				log.Fatalf("DDL statement failed: %v", err)
			}
		}
	} else if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seed complete")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categories := []models.Category{
			{CategoryName: "Produce"},
			{CategoryName: "Dairy"},
			{CategoryName: "Grains"},
			{CategoryName: "Protein"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		ingredients := make([]models.Ingredient, 0, 8)
		for i := 0; i < 8; i++ {
			catID := categories[i%len(categories)].CategoryID
			ingredients = append(ingredients, models.Ingredient{CategoryID: &catID})
		}
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}

		users := []models.User{
			{Email: "ava.martin@example.com", FName: "Ava", LName: "Martin", Region: "Portland", Age: 29},
			{Email: "liam.chen@example.com", FName: "Liam", LName: "Chen", Region: "Austin", Age: 34},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		now := time.Now()
		recipes := []models.Recipe{
			{Name: "Vegetable Stir Fry", PrepTimeMinutes: "20", DifficultyLevel: "Easy",
				Instructions: "Chop the vegetables and fry over high heat.",
				Status:       models.RecipeStatusActive, CreatedAt: now},
			{Name: "Lentil Soup", PrepTimeMinutes: "45", DifficultyLevel: "Medium",
				Instructions: "Simmer lentils with stock and aromatics.",
				Status:       models.RecipeStatusActive, CreatedAt: now},
			{Name: "Overnight Oats", PrepTimeMinutes: "15", DifficultyLevel: "Easy",
				Instructions: "Combine oats and milk, refrigerate overnight.",
				Status:       models.RecipeStatusActive, CreatedAt: now},
		}
		if err := tx.Create(&recipes).Error; err != nil {
			return err
		}

		for ri, recipe := range recipes {
			for j := 0; j < 2; j++ {
				row := models.RecipeIngredient{
					RecipeID:         recipe.RecipeID,
					IngredientID:     ingredients[(ri*2+j)%len(ingredients)].IngredientID,
					RequiredQuantity: float64(j + 1),
					Unit:             "cup",
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		today := types.Today()
		soon := today.AddDays(2)
		later := today.AddDays(14)
		inventory := []models.InventoryItem{
			{UserID: users[0].UserID, IngredientID: ingredients[0].IngredientID,
				AddedDate: today, Quantity: 2, Unit: "kg", ExpirationDate: &soon, Status: "ok"},
			{UserID: users[0].UserID, IngredientID: ingredients[1].IngredientID,
				AddedDate: today, Quantity: 1, Unit: "l", ExpirationDate: &later, Status: "ok"},
			{UserID: users[1].UserID, IngredientID: ingredients[2].IngredientID,
				AddedDate: today, Quantity: 500, Unit: "g", Status: "ok"},
		}
		if err := tx.Create(&inventory).Error; err != nil {
			return err
		}

		profiles := []models.UserDietProfile{
			{UserID: users[0].UserID, DietTypes: "vegetarian", Notes: "no peanuts"},
		}
		if err := tx.Create(&profiles).Error; err != nil {
			return err
		}
		budgets := []models.UserBudgetProfile{
			{UserID: users[0].UserID, WeeklyBudgetAmount: decimal.NewFromInt(80), Currency: "USD"},
			{UserID: users[1].UserID, WeeklyBudgetAmount: decimal.NewFromInt(120), Currency: "USD"},
		}
		if err := tx.Create(&budgets).Error; err != nil {
			return err
		}

		period := models.TimePeriod{
			StartDate:   today.AddDays(-37),
			EndDate:     today.AddDays(-7),
			Granularity: "Monthly",
		}
		if err := tx.Create(&period).Error; err != nil {
			return err
		}
		segment := models.DemographicSegment{
			Name: "25-35 Adults", AgeMin: 25, AgeMax: 35, Region: "Portland",
		}
		if err := tx.Create(&segment).Error; err != nil {
			return err
		}

		waste := models.WasteStatistic{
			IngredientID: ingredients[0].IngredientID,
			PeriodID:     period.PeriodID, SegmentID: segment.SegmentID,
			WastedAmount: 3.5, WasteRatePercent: 12.0,
		}
		if err := tx.Create(&waste).Error; err != nil {
			return err
		}
		usage := models.RecipeUsageStatistic{
			RecipeID: recipes[0].RecipeID,
			PeriodID: period.PeriodID, SegmentID: segment.SegmentID,
			UsageCount: 42, UniqueUsers: 17,
		}
		if err := tx.Create(&usage).Error; err != nil {
			return err
		}

		metric := models.SystemMetric{
			Name:        "API Latency",
			Description: "p95 request latency in milliseconds",
		}
		if err := tx.Create(&metric).Error; err != nil {
			return err
		}
		snapshot := models.MetricSnapshot{
			MetricID: metric.MetricID, MeasuredAt: now, Value: 38.4,
		}
		return tx.Create(&snapshot).Error
	})
}
