package models

import (
	"time"

	"github.com/mealmind/mealmind-api/internal/types"
)

// TimePeriod is a reporting window for the aggregate statistics tables.
type TimePeriod struct {
	PeriodID    uint64         `gorm:"primaryKey;autoIncrement"`
	StartDate   types.FlexDate `gorm:"size:10;not null"`
	EndDate     types.FlexDate `gorm:"size:10;not null"`
	Granularity string         `gorm:"size:32"`
}

// DemographicSegment is a reporting cohort (age band + region).
type DemographicSegment struct {
	SegmentID uint64 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:128;not null"`
	AgeMin    int
	AgeMax    int
	Region    string `gorm:"size:128"`
}

// WasteStatistic is an insert-only aggregate of wasted ingredient amounts
// per period and segment.
type WasteStatistic struct {
	WasteStatID      uint64 `gorm:"primaryKey;autoIncrement"`
	IngredientID     uint64 `gorm:"index;not null"`
	PeriodID         uint64 `gorm:"index;not null"`
	SegmentID        uint64 `gorm:"index;not null"`
	WastedAmount     float64
	WasteRatePercent float64
}

// RecipeUsageStatistic is an insert-only aggregate of recipe usage per
// period and segment.
type RecipeUsageStatistic struct {
	UsageStatID uint64 `gorm:"primaryKey;autoIncrement"`
	RecipeID    uint64 `gorm:"index;not null"`
	PeriodID    uint64 `gorm:"index;not null"`
	SegmentID   uint64 `gorm:"index;not null"`
	UsageCount  int64
	UniqueUsers int64
}

// SystemMetric is a named operational metric.
type SystemMetric struct {
	MetricID    uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:128;not null"`
	Description string `gorm:"size:512"`
}

// MetricSnapshot is one measurement of a metric. Labels carries optional
// free-form dimensions as JSON.
type MetricSnapshot struct {
	SnapshotID uint64    `gorm:"primaryKey;autoIncrement"`
	MetricID   uint64    `gorm:"index;not null"`
	MeasuredAt time.Time `gorm:"index;not null"`
	Value      float64
	Labels     JSON `gorm:"type:json"`
}

// Alert statuses. An alert opens, may be acknowledged, and is eventually
// resolved; moving into a resolved-like status stamps ResolvedAt.
const (
	AlertStatusOpen         = "open"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
)

// SystemAlert is an operational alert, optionally tied to a metric.
type SystemAlert struct {
	AlertID    uint64  `gorm:"primaryKey;autoIncrement"`
	MetricID   *uint64 `gorm:"index"`
	AlertType  string  `gorm:"size:64;not null"`
	Severity   string  `gorm:"size:32;not null"`
	Message    string  `gorm:"size:512"`
	CreatedAt  time.Time
	ResolvedAt *time.Time
	Status     string `gorm:"size:32;not null;default:open"`
}

// TableName overrides the table name for TimePeriod
func (TimePeriod) TableName() string {
	return "time_periods"
}

// TableName overrides the table name for DemographicSegment
func (DemographicSegment) TableName() string {
	return "demographic_segments"
}

// TableName overrides the table name for WasteStatistic
func (WasteStatistic) TableName() string {
	return "waste_statistics"
}

// TableName overrides the table name for RecipeUsageStatistic
func (RecipeUsageStatistic) TableName() string {
	return "recipe_usage_statistics"
}

// TableName overrides the table name for SystemMetric
func (SystemMetric) TableName() string {
	return "system_metrics"
}

// TableName overrides the table name for MetricSnapshot
func (MetricSnapshot) TableName() string {
	return "metric_snapshots"
}

// TableName overrides the table name for SystemAlert
func (SystemAlert) TableName() string {
	return "system_alerts"
}
