// analytics.go
//
// MealMind API - meal planning and food waste tracking data service

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/services"
	"github.com/mealmind/mealmind-api/internal/utils"
	"gorm.io/gorm"
)

// AnalyticsHandler handles metric, alert and statistics routes
type AnalyticsHandler struct {
	DB *gorm.DB
}

type recordSnapshotRequest struct {
	Value      float64     `json:"value"`
	MeasuredAt *time.Time  `json:"measured_at"`
	Labels     models.JSON `json:"labels"`
}

type createAlertRequest struct {
	MetricID  *uint64 `json:"metric_id"`
	AlertType string  `json:"alert_type"`
	Severity  string  `json:"severity"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
}

type updateAlertRequest struct {
	Status     string     `json:"status"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

// ListMetrics handles GET /api/system-metrics
// @Summary List system metrics
// @Description Get all system metrics with their latest snapshot values
// @Tags Analytics
// @Produce json
// @Success 200 {array} services.MetricRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /system-metrics [get]
func (h *AnalyticsHandler) ListMetrics(c *fiber.Ctx) error {
	rows, err := services.ListMetrics(h.DB)
	if err != nil {
		return respondError(c, "listMetrics", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// parseRangeBound accepts either a bare date or an RFC 3339 timestamp.
func parseRangeBound(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ListSnapshots handles GET /api/system-metrics/:metricId/snapshots
// @Summary List metric snapshots
// @Description Get snapshots for a metric inside an optional time range, ordered by measurement time
// @Tags Analytics
// @Produce json
// @Param metricId path int true "Metric ID"
// @Param start query string false "Range start (YYYY-MM-DD or RFC 3339)"
// @Param end query string false "Range end (YYYY-MM-DD or RFC 3339)"
// @Success 200 {array} models.MetricSnapshot
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /system-metrics/{metricId}/snapshots [get]
func (h *AnalyticsHandler) ListSnapshots(c *fiber.Ctx) error {
	metricID, err := paramID(c, "metricId")
	if err != nil {
		return respondError(c, "listSnapshots", err)
	}

	var from, to *time.Time
	if s := c.Query("start"); s != "" {
		t, err := parseRangeBound(s)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid start timestamp")
		}
		from = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := parseRangeBound(s)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid end timestamp")
		}
		to = &t
	}

	snaps, err := services.ListMetricSnapshots(h.DB, metricID, from, to)
	if err != nil {
		return respondError(c, "listSnapshots", err)
	}
	return c.Status(fiber.StatusOK).JSON(snaps)
}

// RecordSnapshot handles POST /api/system-metrics/:metricId/snapshots
// @Summary Record metric snapshot
// @Description Ingest one measurement for a metric
// @Tags Analytics
// @Accept json
// @Produce json
// @Param metricId path int true "Metric ID"
// @Param body body recordSnapshotRequest true "Measurement"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /system-metrics/{metricId}/snapshots [post]
func (h *AnalyticsHandler) RecordSnapshot(c *fiber.Ctx) error {
	metricID, err := paramID(c, "metricId")
	if err != nil {
		return respondError(c, "recordSnapshot", err)
	}

	var req recordSnapshotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	measuredAt := time.Time{}
	if req.MeasuredAt != nil {
		measuredAt = *req.MeasuredAt
	}
	snap, err := services.RecordMetricSnapshot(h.DB, metricID, req.Value, measuredAt, req.Labels)
	if err != nil {
		return respondError(c, "recordSnapshot", err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "snapshot recorded",
		fiber.Map{"snapshot_id": snap.SnapshotID})
}

// ListAlerts handles GET /api/system-alerts
// @Summary List alerts
// @Tags Analytics
// @Produce json
// @Param status query string false "Filter by status (open, acknowledged, resolved)"
// @Param severity query string false "Filter by severity"
// @Success 200 {array} models.SystemAlert
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /system-alerts [get]
func (h *AnalyticsHandler) ListAlerts(c *fiber.Ctx) error {
	alerts, err := services.ListAlerts(h.DB, c.Query("status"), c.Query("severity"))
	if err != nil {
		return respondError(c, "listAlerts", err)
	}
	return c.Status(fiber.StatusOK).JSON(alerts)
}

// GetAlert handles GET /api/system-alerts/:alertId
// @Summary Get alert
// @Tags Analytics
// @Produce json
// @Param alertId path int true "Alert ID"
// @Success 200 {object} models.SystemAlert
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /system-alerts/{alertId} [get]
func (h *AnalyticsHandler) GetAlert(c *fiber.Ctx) error {
	alertID, err := paramID(c, "alertId")
	if err != nil {
		return respondError(c, "getAlert", err)
	}
	alert, err := services.GetAlert(h.DB, alertID)
	if err != nil {
		return respondError(c, "getAlert", err)
	}
	return c.Status(fiber.StatusOK).JSON(alert)
}

// CreateAlert handles POST /api/system-alerts
// @Summary Create alert
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body createAlertRequest true "Alert to open"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /system-alerts [post]
func (h *AnalyticsHandler) CreateAlert(c *fiber.Ctx) error {
	var req createAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	alert, err := services.CreateAlert(h.DB, services.AlertInput{
		MetricID:  req.MetricID,
		AlertType: req.AlertType,
		Severity:  req.Severity,
		Message:   req.Message,
		Status:    req.Status,
	})
	if err != nil {
		return respondError(c, "createAlert", err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "alert created",
		fiber.Map{"alert_id": alert.AlertID})
}

// UpdateAlert handles PUT /api/system-alerts/:alertId
// @Summary Update alert status
// @Description Move an alert through its lifecycle; resolving stamps the resolution time
// @Tags Analytics
// @Accept json
// @Produce json
// @Param alertId path int true "Alert ID"
// @Param body body updateAlertRequest true "Status change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /system-alerts/{alertId} [put]
func (h *AnalyticsHandler) UpdateAlert(c *fiber.Ctx) error {
	alertID, err := paramID(c, "alertId")
	if err != nil {
		return respondError(c, "updateAlert", err)
	}

	var req updateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	alert, err := services.UpdateAlertStatus(h.DB, alertID, req.Status, req.ResolvedAt)
	if err != nil {
		return respondError(c, "updateAlert", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "alert updated",
		fiber.Map{"alert": alert})
}

// ListWaste handles GET /api/waste-statistics
// @Summary List waste statistics
// @Description Waste totals per ingredient, heaviest first
// @Tags Analytics
// @Produce json
// @Param period_id query int false "Filter by period"
// @Param segment_id query int false "Filter by demographic segment"
// @Success 200 {array} services.WasteRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /waste-statistics [get]
func (h *AnalyticsHandler) ListWaste(c *fiber.Ctx) error {
	rows, err := services.ListWasteStatistics(h.DB,
		uint64(c.QueryInt("period_id", 0)), uint64(c.QueryInt("segment_id", 0)))
	if err != nil {
		return respondError(c, "listWaste", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// ListUsage handles GET /api/recipe-usage-statistics
// @Summary List recipe usage statistics
// @Description Usage totals per recipe, most used first
// @Tags Analytics
// @Produce json
// @Param period_id query int false "Filter by period"
// @Param segment_id query int false "Filter by demographic segment"
// @Success 200 {array} services.UsageRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /recipe-usage-statistics [get]
func (h *AnalyticsHandler) ListUsage(c *fiber.Ctx) error {
	rows, err := services.ListUsageStatistics(h.DB,
		uint64(c.QueryInt("period_id", 0)), uint64(c.QueryInt("segment_id", 0)))
	if err != nil {
		return respondError(c, "listUsage", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// ListPeriods handles GET /api/time-periods
// @Summary List time periods
// @Tags Analytics
// @Produce json
// @Success 200 {array} models.TimePeriod
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /time-periods [get]
func (h *AnalyticsHandler) ListPeriods(c *fiber.Ctx) error {
	periods, err := services.ListTimePeriods(h.DB)
	if err != nil {
		return respondError(c, "listPeriods", err)
	}
	return c.Status(fiber.StatusOK).JSON(periods)
}

// ListSegments handles GET /api/demographic-segments
// @Summary List demographic segments
// @Tags Analytics
// @Produce json
// @Success 200 {array} models.DemographicSegment
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /demographic-segments [get]
func (h *AnalyticsHandler) ListSegments(c *fiber.Ctx) error {
	segments, err := services.ListSegments(h.DB)
	if err != nil {
		return respondError(c, "listSegments", err)
	}
	return c.Status(fiber.StatusOK).JSON(segments)
}

// DataQuality handles GET /api/data-quality-reports
// @Summary Data quality report
// @Description Count rows failing basic integrity checks
// @Tags Analytics
// @Produce json
// @Success 200 {object} services.DataQualityReport
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /data-quality-reports [get]
func (h *AnalyticsHandler) DataQuality(c *fiber.Ctx) error {
	report, err := services.BuildDataQualityReport(h.DB)
	if err != nil {
		return respondError(c, "dataQuality", err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// Report handles GET /api/analytics/reports
// @Summary Analytics summary report
// @Description Waste and recipe usage totals, optionally for one period
// @Tags Analytics
// @Produce json
// @Param period_id query int false "Filter by period"
// @Success 200 {object} services.AnalyticsReport
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics/reports [get]
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	report, err := services.BuildAnalyticsReport(h.DB, uint64(c.QueryInt("period_id", 0)))
	if err != nil {
		return respondError(c, "analyticsReport", err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}
