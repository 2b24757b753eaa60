// health.go
//
// MealMind API - meal planning and food waste tracking data service

package services

import (
	"context"
	"time"

	"github.com/mealmind/mealmind-api/internal/config"
	"gorm.io/gorm"
)

// HealthResult is the outcome of a health probe.
type HealthResult struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	DBType    string    `json:"db_type"`
	Timestamp time.Time `json:"timestamp"`
}

// CheckHealth verifies database connectivity with a bounded ping.
func CheckHealth(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// HealthCheck probes the database and reports a structured result for the
// container healthcheck binary.
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthResult {
	result := HealthResult{
		Status:    "healthy",
		Database:  "connected",
		DBType:    cfg.DBType,
		Timestamp: time.Now().UTC(),
	}
	if err := CheckHealth(db); err != nil {
		result.Status = "unhealthy"
		result.Database = err.Error()
	}
	return result
}
