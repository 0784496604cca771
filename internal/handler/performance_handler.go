package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"field-track-api/internal/performance"
	"field-track-api/internal/response"
	"field-track-api/internal/service"
)

// PerformanceHandler handles aggregation, forecast and earnings endpoints
type PerformanceHandler struct {
	performanceService service.PerformanceService
	logger             *zap.Logger
}

// NewPerformanceHandler creates a new instance of PerformanceHandler
func NewPerformanceHandler(performanceService service.PerformanceService, logger *zap.Logger) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: performanceService,
		logger:             logger,
	}
}

// GetPerformance handles GET /projects/:projectId/performance?range=DAY|WEEK|ALL
func (h *PerformanceHandler) GetPerformance(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	timeRange := performance.RangeAll
	if raw := c.Query("range"); raw != "" {
		switch performance.TimeRange(strings.ToUpper(raw)) {
		case performance.RangeDay:
			timeRange = performance.RangeDay
		case performance.RangeWeek:
			timeRange = performance.RangeWeek
		case performance.RangeAll:
			timeRange = performance.RangeAll
		default:
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "range must be DAY, WEEK or ALL")
			return
		}
	}

	perf, err := h.performanceService.GetPerformance(c.Request.Context(), projectID, timeRange)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, perf)
}

// GetForecast handles GET /projects/:projectId/forecast
func (h *PerformanceHandler) GetForecast(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	forecast, err := h.performanceService.GetForecast(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, forecast)
}

// GetWorkerEarnings handles GET /workers/:workerId/earnings
func (h *PerformanceHandler) GetWorkerEarnings(c *gin.Context) {
	workerID, ok := parseUUIDParam(c, "workerId")
	if !ok {
		return
	}

	earnings, err := h.performanceService.GetWorkerEarnings(c.Request.Context(), workerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, earnings)
}
