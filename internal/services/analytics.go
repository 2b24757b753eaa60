// analytics.go
//
// MealMind API - meal planning and food waste tracking data service

package services

import (
	"time"

	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
	"gorm.io/gorm"
)

// MetricRow is a system metric joined with its most recent snapshot value.
type MetricRow struct {
	MetricID    uint64
	Name        string
	Description string
	LatestValue *float64
	MeasuredAt  *time.Time
}

// ListMetrics returns all system metrics with their latest snapshot value,
// if any snapshot exists.
func ListMetrics(db *gorm.DB) ([]MetricRow, error) {
	var rows []MetricRow
	err := db.Table("system_metrics m").
		Select("m.metric_id, m.name, m.description, s.value AS latest_value, s.measured_at").
		Joins(`LEFT JOIN metric_snapshots s ON s.metric_id = m.metric_id
			AND s.measured_at = (
				SELECT MAX(s2.measured_at) FROM metric_snapshots s2
				WHERE s2.metric_id = m.metric_id)`).
		Order("m.metric_id").
		Scan(&rows).Error
	return rows, err
}

// ListMetricSnapshots returns snapshots for one metric inside an optional
// time range, ordered by measurement time.
func ListMetricSnapshots(db *gorm.DB, metricID uint64, from, to *time.Time) ([]models.MetricSnapshot, error) {
	var count int64
	if err := db.Model(&models.SystemMetric{}).
		Where("metric_id = ?", metricID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, types.NewNotFound("metric")
	}

	q := db.Where("metric_id = ?", metricID)
	if from != nil {
		q = q.Where("measured_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("measured_at <= ?", *to)
	}
	var snaps []models.MetricSnapshot
	err := q.Order("measured_at").Find(&snaps).Error
	return snaps, err
}

// RecordMetricSnapshot ingests one measurement for a metric. A zero
// measurement time is stamped with now.
func RecordMetricSnapshot(db *gorm.DB, metricID uint64, value float64, measuredAt time.Time, labels models.JSON) (models.MetricSnapshot, error) {
	var count int64
	if err := db.Model(&models.SystemMetric{}).
		Where("metric_id = ?", metricID).Count(&count).Error; err != nil {
		return models.MetricSnapshot{}, err
	}
	if count == 0 {
		return models.MetricSnapshot{}, types.NewNotFound("metric")
	}

	if measuredAt.IsZero() {
		measuredAt = time.Now()
	}
	snap := models.MetricSnapshot{
		MetricID:   metricID,
		MeasuredAt: measuredAt,
		Value:      value,
		Labels:     labels,
	}
	err := db.Create(&snap).Error
	return snap, err
}

// AlertInput carries an alert create request.
type AlertInput struct {
	MetricID  *uint64
	AlertType string
	Severity  string
	Message   string
	Status    string
}

// ListAlerts returns alerts, optionally narrowed by status and severity,
// newest first.
func ListAlerts(db *gorm.DB, status, severity string) ([]models.SystemAlert, error) {
	q := db.Model(&models.SystemAlert{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if severity != "" {
		q = q.Where("severity = ?", severity)
	}
	var alerts []models.SystemAlert
	err := q.Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

// GetAlert returns one alert by id.
func GetAlert(db *gorm.DB, alertID uint64) (models.SystemAlert, error) {
	var alert models.SystemAlert
	err := db.Where("alert_id = ?", alertID).First(&alert).Error
	if err == gorm.ErrRecordNotFound {
		return models.SystemAlert{}, types.NewNotFound("alert")
	}
	return alert, err
}

// CreateAlert opens a new alert.
func CreateAlert(db *gorm.DB, in AlertInput) (models.SystemAlert, error) {
	if in.Message == "" {
		return models.SystemAlert{}, types.NewValidation("message is required")
	}
	if in.MetricID != nil {
		var count int64
		if err := db.Model(&models.SystemMetric{}).
			Where("metric_id = ?", *in.MetricID).Count(&count).Error; err != nil {
			return models.SystemAlert{}, err
		}
		if count == 0 {
			return models.SystemAlert{}, types.NewNotFound("metric")
		}
	}

	status := in.Status
	if status == "" {
		status = models.AlertStatusOpen
	}
	alert := models.SystemAlert{
		MetricID:  in.MetricID,
		AlertType: in.AlertType,
		Severity:  in.Severity,
		Message:   in.Message,
		CreatedAt: time.Now(),
		Status:    status,
	}
	err := db.Create(&alert).Error
	return alert, err
}

// UpdateAlertStatus moves an alert through its lifecycle. Moving to
// resolved stamps the resolution time when the caller does not supply one.
func UpdateAlertStatus(db *gorm.DB, alertID uint64, status string, resolvedAt *time.Time) (models.SystemAlert, error) {
	switch status {
	case models.AlertStatusOpen, models.AlertStatusAcknowledged, models.AlertStatusResolved:
	default:
		return models.SystemAlert{}, types.NewValidation("unknown alert status")
	}

	updates := map[string]interface{}{"status": status}
	if status == models.AlertStatusResolved {
		if resolvedAt == nil {
			now := time.Now()
			resolvedAt = &now
		}
		updates["resolved_at"] = *resolvedAt
	}

	result := db.Model(&models.SystemAlert{}).
		Where("alert_id = ?", alertID).
		Updates(updates)
	if result.Error != nil {
		return models.SystemAlert{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SystemAlert{}, types.NewNotFound("alert")
	}

	var alert models.SystemAlert
	err := db.Where("alert_id = ?", alertID).First(&alert).Error
	return alert, err
}

// WasteRow aggregates waste figures per ingredient with its category label.
type WasteRow struct {
	IngredientID        uint64
	CategoryID          *uint64
	CategoryName        *string
	TotalWastedAmount   float64
	AvgWasteRatePercent float64
}

// ListWasteStatistics sums waste per ingredient, optionally narrowed to one
// period or segment, heaviest waste first.
func ListWasteStatistics(db *gorm.DB, periodID, segmentID uint64) ([]WasteRow, error) {
	q := db.Table("waste_statistics w").
		Select(`w.ingredient_id, i.category_id, c.category_name,
			SUM(w.wasted_amount) AS total_wasted_amount,
			AVG(w.waste_rate_percent) AS avg_waste_rate_percent`).
		Joins("LEFT JOIN ingredients i ON w.ingredient_id = i.ingredient_id").
		Joins("LEFT JOIN categories c ON i.category_id = c.category_id")
	if periodID != 0 {
		q = q.Where("w.period_id = ?", periodID)
	}
	if segmentID != 0 {
		q = q.Where("w.segment_id = ?", segmentID)
	}
	var rows []WasteRow
	err := q.Group("w.ingredient_id, i.category_id, c.category_name").
		Order("total_wasted_amount DESC").
		Scan(&rows).Error
	return rows, err
}

// UsageRow aggregates usage figures per recipe.
type UsageRow struct {
	RecipeID         uint64
	Name             string
	TotalUsageCount  int64
	TotalUniqueUsers int64
}

// ListUsageStatistics sums recipe usage, optionally narrowed to one period
// or segment, most used first.
func ListUsageStatistics(db *gorm.DB, periodID, segmentID uint64) ([]UsageRow, error) {
	q := db.Table("recipe_usage_statistics u").
		Select(`u.recipe_id, r.name,
			SUM(u.usage_count) AS total_usage_count,
			SUM(u.unique_users) AS total_unique_users`).
		Joins("JOIN recipes r ON u.recipe_id = r.recipe_id")
	if periodID != 0 {
		q = q.Where("u.period_id = ?", periodID)
	}
	if segmentID != 0 {
		q = q.Where("u.segment_id = ?", segmentID)
	}
	var rows []UsageRow
	err := q.Group("u.recipe_id, r.name").
		Order("total_usage_count DESC").
		Scan(&rows).Error
	return rows, err
}

// ListTimePeriods returns all reporting periods, most recent first.
func ListTimePeriods(db *gorm.DB) ([]models.TimePeriod, error) {
	var periods []models.TimePeriod
	err := db.Order("start_date DESC").Find(&periods).Error
	return periods, err
}

// ListSegments returns all demographic segments.
func ListSegments(db *gorm.DB) ([]models.DemographicSegment, error) {
	var segments []models.DemographicSegment
	err := db.Order("segment_id").Find(&segments).Error
	return segments, err
}

// DataQualityReport counts rows that fail basic integrity checks across the
// catalog and content tables.
type DataQualityReport struct {
	OrphanInventoryItems      int64 `json:"orphan_inventory_items"`
	RecipesWithoutIngredients int64 `json:"recipes_without_ingredients"`
	UnusedIngredients         int64 `json:"unused_ingredients"`
}

// BuildDataQualityReport scans for rows referencing missing parents and
// content nothing references back.
func BuildDataQualityReport(db *gorm.DB) (DataQualityReport, error) {
	var report DataQualityReport
	checks := []struct {
		dest  *int64
		query string
	}{
		{&report.OrphanInventoryItems,
			`SELECT COUNT(*) FROM inventory_items ii
			 LEFT JOIN ingredients i ON ii.ingredient_id = i.ingredient_id
			 WHERE i.ingredient_id IS NULL`},
		{&report.RecipesWithoutIngredients,
			`SELECT COUNT(*) FROM recipes r
			 LEFT JOIN recipe_ingredients ri ON r.recipe_id = ri.recipe_id
			 WHERE ri.recipe_id IS NULL`},
		{&report.UnusedIngredients,
			`SELECT COUNT(*) FROM ingredients i
			 LEFT JOIN recipe_ingredients ri ON i.ingredient_id = ri.ingredient_id
			 WHERE ri.ingredient_id IS NULL`},
	}
	for _, c := range checks {
		if err := db.Raw(c.query).Scan(c.dest).Error; err != nil {
			return report, err
		}
	}
	return report, nil
}

// AnalyticsReport combines waste and usage totals, optionally for one
// period. The totals are nil when no statistics rows match.
type AnalyticsReport struct {
	PeriodID         *uint64  `json:"period_id"`
	TotalWaste       *float64 `json:"total_waste"`
	TotalRecipeUsage *int64   `json:"total_recipe_usage"`
	TotalUniqueUsers *int64   `json:"total_unique_users"`
}

// BuildAnalyticsReport sums waste and recipe usage into one summary. A zero
// periodID means all periods.
func BuildAnalyticsReport(db *gorm.DB, periodID uint64) (AnalyticsReport, error) {
	var report AnalyticsReport
	if periodID != 0 {
		report.PeriodID = &periodID
	}

	type wasteTotals struct {
		TotalWaste *float64
	}
	var waste wasteTotals
	wq := db.Table("waste_statistics").Select("SUM(wasted_amount) AS total_waste")
	if periodID != 0 {
		wq = wq.Where("period_id = ?", periodID)
	}
	if err := wq.Scan(&waste).Error; err != nil {
		return report, err
	}
	report.TotalWaste = waste.TotalWaste

	type usageTotals struct {
		TotalUsage       *int64
		TotalUniqueUsers *int64
	}
	var totals usageTotals
	uq := db.Table("recipe_usage_statistics").
		Select("SUM(usage_count) AS total_usage, SUM(unique_users) AS total_unique_users")
	if periodID != 0 {
		uq = uq.Where("period_id = ?", periodID)
	}
	if err := uq.Scan(&totals).Error; err != nil {
		return report, err
	}
	report.TotalRecipeUsage = totals.TotalUsage
	report.TotalUniqueUsers = totals.TotalUniqueUsers
	return report, nil
}
