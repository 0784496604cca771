package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"field-track-api/internal/dto"
	"field-track-api/internal/response"
	"field-track-api/internal/service"
)

// WorkerHandler handles worker endpoints
type WorkerHandler struct {
	workerService service.WorkerService
	logger        *zap.Logger
}

// NewWorkerHandler creates a new instance of WorkerHandler
func NewWorkerHandler(workerService service.WorkerService, logger *zap.Logger) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
		logger:        logger,
	}
}

// CreateWorker handles POST /workers
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, worker)
}

// GetWorker handles GET /workers/:workerId
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	workerID, ok := parseUUIDParam(c, "workerId")
	if !ok {
		return
	}

	worker, err := h.workerService.GetWorker(c.Request.Context(), workerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, worker)
}

// ListWorkers handles GET /workers
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	workers, err := h.workerService.ListWorkers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, workers)
}

// UpdateWorker handles PUT /workers/:workerId
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	workerID, ok := parseUUIDParam(c, "workerId")
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), workerID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, worker)
}
