package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"field-track-api/internal/dto"
	"field-track-api/internal/response"
	"field-track-api/internal/service"
)

// WorkLogHandler handles work log endpoints
type WorkLogHandler struct {
	workLogService service.WorkLogService
	logger         *zap.Logger
}

// NewWorkLogHandler creates a new instance of WorkLogHandler
func NewWorkLogHandler(workLogService service.WorkLogService, logger *zap.Logger) *WorkLogHandler {
	return &WorkLogHandler{
		workLogService: workLogService,
		logger:         logger,
	}
}

// CreateLog handles POST /logs
func (h *WorkLogHandler) CreateLog(c *gin.Context) {
	var req dto.CreateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	log, err := h.workLogService.CreateLog(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, log)
}

// UpdateLog handles PUT /logs/:logId
func (h *WorkLogHandler) UpdateLog(c *gin.Context) {
	logID, ok := parseUUIDParam(c, "logId")
	if !ok {
		return
	}

	var req dto.UpdateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	log, err := h.workLogService.UpdateLog(c.Request.Context(), logID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, log)
}

// ListByProject handles GET /projects/:projectId/logs
func (h *WorkLogHandler) ListByProject(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	logs, err := h.workLogService.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, logs)
}

// ListByWorker handles GET /workers/:workerId/logs
func (h *WorkLogHandler) ListByWorker(c *gin.Context) {
	workerID, ok := parseUUIDParam(c, "workerId")
	if !ok {
		return
	}

	logs, err := h.workLogService.ListByWorker(c.Request.Context(), workerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, logs)
}
