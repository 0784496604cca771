package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"field-track-api/internal/domain"
	"field-track-api/internal/dto"
	"field-track-api/internal/handler"
	"field-track-api/internal/repository"
	"field-track-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRouter wires the full stack over an in-memory database, no
// Redis and no backup store
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Project{},
		&domain.Table{},
		&domain.WorkLog{},
		&domain.Worker{},
	))

	logger := zap.NewNop()
	projectRepo := repository.NewProjectRepository(db)
	workLogRepo := repository.NewWorkLogRepository(db)
	workerRepo := repository.NewWorkerRepository(db)

	projectService := service.NewProjectService(projectRepo, nil, logger)
	workLogService := service.NewWorkLogService(workLogRepo, projectRepo, workerRepo, nil, logger)
	workerService := service.NewWorkerService(workerRepo, logger)
	performanceService := service.NewPerformanceService(projectRepo, workLogRepo, workerRepo, nil, 0, logger)
	backupService := service.NewBackupService(projectRepo, workLogRepo, workerRepo, nil, "test", nil, logger)

	return Setup(Config{
		BasePath:           "/api/field",
		DB:                 db,
		Logger:             logger,
		ProjectHandler:     handler.NewProjectHandler(projectService, logger),
		WorkLogHandler:     handler.NewWorkLogHandler(workLogService, logger),
		WorkerHandler:      handler.NewWorkerHandler(workerService, logger),
		PerformanceHandler: handler.NewPerformanceHandler(performanceService, logger),
		BackupHandler:      handler.NewBackupHandler(backupService, logger),
	})
}

func TestRouter_HealthAndReady(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ProjectLifecycle(t *testing.T) {
	router := setupTestRouter(t)

	// Create a project from raw table text
	body, _ := json.Marshal(dto.CreateProjectRequest{
		Name:      "FVE Sever",
		RawTables: "2E01 L\n2E02 M\n2E03",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/field/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data dto.ProjectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, domain.ProjectModeStrict, created.Data.Mode)
	require.Len(t, created.Data.Tables, 3)

	// Fetch it back with sections
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/field/projects/"+created.Data.ID.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Data dto.ProjectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.Data.ID, fetched.Data.ID)
	require.NotEmpty(t, fetched.Data.Sections)
}

func TestRouter_WorkLogFlow(t *testing.T) {
	router := setupTestRouter(t)

	// Project with one table
	body, _ := json.Marshal(dto.CreateProjectRequest{Name: "FVE Jih", RawTables: "A-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/field/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	var project struct {
		Data dto.ProjectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))

	// Worker
	body, _ = json.Marshal(dto.CreateWorkerRequest{Name: "Jana", Role: "STRINGER"})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/field/workers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	var worker struct {
		Data dto.WorkerResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &worker))

	// Table log marks the table done
	body, _ = json.Marshal(dto.CreateWorkLogRequest{
		ProjectID: project.Data.ID,
		WorkerID:  worker.Data.ID,
		Type:      "TABLE",
		TableIDs:  []string{project.Data.Tables[0].ID},
	})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/field/logs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// Completed count reflects the log
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/field/projects/"+project.Data.ID.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	var after struct {
		Data dto.ProjectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Equal(t, 1, after.Data.CompletedTables)

	// Performance sees the table
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/field/projects/"+project.Data.ID.String()+"/performance?range=ALL", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/field/nothing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
