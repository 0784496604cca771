package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"field-track-api/internal/backup"
	"field-track-api/internal/response"
	"field-track-api/internal/service"
)

// maxImportBytes caps the accepted backup payload size
const maxImportBytes = 32 << 20

// BackupHandler handles backup export and import endpoints
type BackupHandler struct {
	backupService service.BackupService
	logger        *zap.Logger
}

// NewBackupHandler creates a new instance of BackupHandler
func NewBackupHandler(backupService service.BackupService, logger *zap.Logger) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
		logger:        logger,
	}
}

// Export handles GET /backup/export, returning the backup file as a
// download
func (h *BackupHandler) Export(c *gin.Context) {
	payload, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("field-track_%d.json", time.Now().Unix())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", payload)
}

// ExportToStore handles POST /backup/export/store
func (h *BackupHandler) ExportToStore(c *gin.Context) {
	result, err := h.backupService.ExportToStore(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// Import handles POST /backup/import?mode=merge|replace with the backup
// payload as the request body
func (h *BackupHandler) Import(c *gin.Context) {
	mode := backup.ImportMode(c.DefaultQuery("mode", string(backup.ImportModeMerge)))

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeBadRequest, "Failed to read request body")
		return
	}
	if len(payload) == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Empty backup payload")
		return
	}

	result, err := h.backupService.Import(c.Request.Context(), payload, mode)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// ExportLogsCSV handles GET /backup/logs.csv
func (h *BackupHandler) ExportLogsCSV(c *gin.Context) {
	csv, err := h.backupService.ExportLogsCSV(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("work-logs_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
