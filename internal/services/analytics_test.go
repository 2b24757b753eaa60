package services

import (
	"testing"
	"time"

	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
	"gorm.io/gorm"
)

func seedMetric(t *testing.T, db *gorm.DB, name string) uint64 {
	t.Helper()
	metric := models.SystemMetric{Name: name}
	if err := db.Create(&metric).Error; err != nil {
		t.Fatalf("Failed to seed metric: %v", err)
	}
	return metric.MetricID
}

// TestRecordAndListSnapshots tests snapshot ingest, the time-range filter
// and the latest-value join
func TestRecordAndListSnapshots(t *testing.T) {
	db := setupTestDB(t)
	metricID := seedMetric(t, db, "API Latency")

	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	for i, v := range []float64{10, 20, 30} {
		if _, err := RecordMetricSnapshot(db, metricID, v,
			base.Add(time.Duration(i)*time.Hour), models.JSON{}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	_, err := RecordMetricSnapshot(db, 9999, 1, base, models.JSON{})
	if !types.IsNotFound(err) {
		t.Errorf("Expected not found for missing metric, got %v", err)
	}

	snaps, err := ListMetricSnapshots(db, metricID, nil, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("Expected 3 snapshots, got %d", len(snaps))
	}
	if snaps[0].Value != 10 {
		t.Errorf("Expected oldest first, got value %v", snaps[0].Value)
	}

	from := base.Add(30 * time.Minute)
	to := base.Add(90 * time.Minute)
	ranged, err := ListMetricSnapshots(db, metricID, &from, &to)
	if err != nil {
		t.Fatalf("Ranged list failed: %v", err)
	}
	if len(ranged) != 1 || ranged[0].Value != 20 {
		t.Errorf("Expected single in-range snapshot of 20, got %+v", ranged)
	}

	metrics, err := ListMetrics(db)
	if err != nil {
		t.Fatalf("ListMetrics failed: %v", err)
	}
	if len(metrics) != 1 {
		t.Fatalf("Expected 1 metric, got %d", len(metrics))
	}
	if metrics[0].LatestValue == nil || *metrics[0].LatestValue != 30 {
		t.Errorf("Expected latest value 30, got %v", metrics[0].LatestValue)
	}
}

// TestAlertLifecycle tests create, status transitions and the automatic
// resolution stamp
func TestAlertLifecycle(t *testing.T) {
	db := setupTestDB(t)
	metricID := seedMetric(t, db, "Error Rate")

	alert, err := CreateAlert(db, AlertInput{
		MetricID: &metricID, AlertType: "threshold", Severity: "high",
		Message: "error rate above 5%",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if alert.Status != models.AlertStatusOpen {
		t.Errorf("Expected open status, got %s", alert.Status)
	}

	_, err = CreateAlert(db, AlertInput{Message: ""})
	if !types.IsValidation(err) {
		t.Errorf("Expected validation error for empty message, got %v", err)
	}

	fetched, err := GetAlert(db, alert.AlertID)
	if err != nil || fetched.Message != alert.Message {
		t.Errorf("GetAlert returned %+v, %v", fetched, err)
	}
	_, err = GetAlert(db, 9999)
	if !types.IsNotFound(err) {
		t.Errorf("Expected not found for missing alert, got %v", err)
	}

	high, err := ListAlerts(db, "", "high")
	if err != nil || len(high) != 1 {
		t.Errorf("Expected 1 high-severity alert, got %d (%v)", len(high), err)
	}
	low, err := ListAlerts(db, "", "low")
	if err != nil || len(low) != 0 {
		t.Errorf("Expected no low-severity alerts, got %d (%v)", len(low), err)
	}

	acked, err := UpdateAlertStatus(db, alert.AlertID, models.AlertStatusAcknowledged, nil)
	if err != nil {
		t.Fatalf("Acknowledge failed: %v", err)
	}
	if acked.ResolvedAt != nil {
		t.Error("Acknowledge must not stamp resolution time")
	}

	resolved, err := UpdateAlertStatus(db, alert.AlertID, models.AlertStatusResolved, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.ResolvedAt == nil {
		t.Error("Resolve should stamp resolution time")
	}

	_, err = UpdateAlertStatus(db, alert.AlertID, "bogus", nil)
	if !types.IsValidation(err) {
		t.Errorf("Expected validation error for unknown status, got %v", err)
	}
	_, err = UpdateAlertStatus(db, 9999, models.AlertStatusOpen, nil)
	if !types.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
}

// TestWasteAndUsageStatistics tests the joined listings and their filters
func TestWasteAndUsageStatistics(t *testing.T) {
	db := setupTestDB(t)
	ingredientID := seedIngredient(t, db, "Produce")
	recipeID := seedRecipe(t, db, "Soup")

	period := models.TimePeriod{
		StartDate: "2026-03-01", EndDate: "2026-03-31", Granularity: "Monthly",
	}
	if err := db.Create(&period).Error; err != nil {
		t.Fatalf("Failed to seed period: %v", err)
	}
	segment := models.DemographicSegment{Name: "18-28 Students", AgeMin: 18, AgeMax: 28}
	if err := db.Create(&segment).Error; err != nil {
		t.Fatalf("Failed to seed segment: %v", err)
	}

	for _, w := range []models.WasteStatistic{
		{IngredientID: ingredientID, PeriodID: period.PeriodID,
			SegmentID: segment.SegmentID, WastedAmount: 4.5, WasteRatePercent: 17},
		{IngredientID: ingredientID, PeriodID: period.PeriodID,
			SegmentID: segment.SegmentID, WastedAmount: 1.5, WasteRatePercent: 11},
	} {
		if err := db.Create(&w).Error; err != nil {
			t.Fatalf("Failed to seed waste stat: %v", err)
		}
	}
	usage := models.RecipeUsageStatistic{
		RecipeID: recipeID, PeriodID: period.PeriodID,
		SegmentID: segment.SegmentID, UsageCount: 12, UniqueUsers: 7,
	}
	if err := db.Create(&usage).Error; err != nil {
		t.Fatalf("Failed to seed usage stat: %v", err)
	}

	wasteRows, err := ListWasteStatistics(db, 0, 0)
	if err != nil {
		t.Fatalf("ListWaste failed: %v", err)
	}
	if len(wasteRows) != 1 {
		t.Fatalf("Expected 1 aggregated waste row, got %d", len(wasteRows))
	}
	if wasteRows[0].TotalWastedAmount != 6.0 || wasteRows[0].AvgWasteRatePercent != 14 {
		t.Errorf("Unexpected waste aggregates: %+v", wasteRows[0])
	}
	if wasteRows[0].CategoryName == nil || *wasteRows[0].CategoryName != "Produce" {
		t.Errorf("Unexpected category on waste row: %+v", wasteRows[0])
	}

	none, err := ListWasteStatistics(db, 9999, 0)
	if err != nil {
		t.Fatalf("Filtered ListWaste failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no rows for unknown period, got %d", len(none))
	}

	usageRows, err := ListUsageStatistics(db, period.PeriodID, segment.SegmentID)
	if err != nil {
		t.Fatalf("ListUsage failed: %v", err)
	}
	if len(usageRows) != 1 || usageRows[0].Name != "Soup" || usageRows[0].TotalUsageCount != 12 {
		t.Errorf("Unexpected usage rows: %+v", usageRows)
	}
}

// TestBuildAnalyticsReport tests the waste and usage totals and the period
// filter
func TestBuildAnalyticsReport(t *testing.T) {
	db := setupTestDB(t)
	ingredientID := seedIngredient(t, db, "Produce")
	recipeID := seedRecipe(t, db, "Soup")

	periodA := models.TimePeriod{StartDate: "2026-03-01", EndDate: "2026-03-31", Granularity: "Monthly"}
	periodB := models.TimePeriod{StartDate: "2026-04-01", EndDate: "2026-04-30", Granularity: "Monthly"}
	segment := models.DemographicSegment{Name: "All", AgeMin: 0, AgeMax: 120}
	for _, row := range []interface{}{&periodA, &periodB, &segment} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("Failed to seed: %v", err)
		}
	}

	for _, w := range []models.WasteStatistic{
		{IngredientID: ingredientID, PeriodID: periodA.PeriodID,
			SegmentID: segment.SegmentID, WastedAmount: 2.5, WasteRatePercent: 10},
		{IngredientID: ingredientID, PeriodID: periodB.PeriodID,
			SegmentID: segment.SegmentID, WastedAmount: 1.5, WasteRatePercent: 8},
	} {
		if err := db.Create(&w).Error; err != nil {
			t.Fatalf("Failed to seed waste stat: %v", err)
		}
	}
	usage := models.RecipeUsageStatistic{
		RecipeID: recipeID, PeriodID: periodA.PeriodID,
		SegmentID: segment.SegmentID, UsageCount: 9, UniqueUsers: 4,
	}
	if err := db.Create(&usage).Error; err != nil {
		t.Fatalf("Failed to seed usage stat: %v", err)
	}

	report, err := BuildAnalyticsReport(db, 0)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if report.PeriodID != nil {
		t.Errorf("Expected nil period on unfiltered report, got %v", *report.PeriodID)
	}
	if report.TotalWaste == nil || *report.TotalWaste != 4.0 {
		t.Errorf("Unexpected total waste: %+v", report.TotalWaste)
	}
	if report.TotalRecipeUsage == nil || *report.TotalRecipeUsage != 9 {
		t.Errorf("Unexpected total usage: %+v", report.TotalRecipeUsage)
	}

	filtered, err := BuildAnalyticsReport(db, periodB.PeriodID)
	if err != nil {
		t.Fatalf("Filtered report failed: %v", err)
	}
	if filtered.TotalWaste == nil || *filtered.TotalWaste != 1.5 {
		t.Errorf("Unexpected filtered waste: %+v", filtered.TotalWaste)
	}
	if filtered.TotalRecipeUsage != nil {
		t.Errorf("Expected nil usage total for empty period, got %v", *filtered.TotalRecipeUsage)
	}
}

// TestBuildDataQualityReport tests orphan and unused-row detection
func TestBuildDataQualityReport(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "quality@example.com")
	seedIngredient(t, db, "Produce") // never used by any recipe
	seedRecipe(t, db, "Empty Bowl")  // no ingredient requirements

	// Inventory row pointing at a missing ingredient.
	orphan := models.InventoryItem{
		UserID: userID, IngredientID: 4242, AddedDate: types.Today(),
		Quantity: 1, Unit: "kg", Status: "ok",
	}
	if err := db.Create(&orphan).Error; err != nil {
		t.Fatalf("Failed to seed orphan: %v", err)
	}

	report, err := BuildDataQualityReport(db)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if report.OrphanInventoryItems != 1 {
		t.Errorf("Expected 1 orphan inventory item, got %d", report.OrphanInventoryItems)
	}
	if report.RecipesWithoutIngredients != 1 {
		t.Errorf("Expected 1 recipe without ingredients, got %d", report.RecipesWithoutIngredients)
	}
	if report.UnusedIngredients != 1 {
		t.Errorf("Expected 1 unused ingredient, got %d", report.UnusedIngredients)
	}
}
