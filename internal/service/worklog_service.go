package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"field-track-api/internal/domain"
	"field-track-api/internal/dto"
	"field-track-api/internal/metrics"
	"field-track-api/internal/repository"
	"field-track-api/internal/response"
	"field-track-api/internal/rules"
)

// WorkLogService defines the interface for work log business logic
type WorkLogService interface {
	CreateLog(ctx context.Context, req *dto.CreateWorkLogRequest) (*dto.WorkLogResponse, error)
	UpdateLog(ctx context.Context, logID uuid.UUID, req *dto.UpdateWorkLogRequest) (*dto.WorkLogResponse, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*dto.WorkLogResponse, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]*dto.WorkLogResponse, error)
}

type workLogServiceImpl struct {
	workLogRepo repository.WorkLogRepository
	projectRepo repository.ProjectRepository
	workerRepo  repository.WorkerRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewWorkLogService creates a new instance of WorkLogService
func NewWorkLogService(
	workLogRepo repository.WorkLogRepository,
	projectRepo repository.ProjectRepository,
	workerRepo repository.WorkerRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) WorkLogService {
	return &workLogServiceImpl{
		workLogRepo: workLogRepo,
		projectRepo: projectRepo,
		workerRepo:  workerRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateLog appends one work event. TABLE logs default their status to
// DONE and propagate it onto the referenced tables, then the project's
// completed count is recomputed from table state.
func (s *workLogServiceImpl) CreateLog(ctx context.Context, req *dto.CreateWorkLogRequest) (*dto.WorkLogResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	if _, err := s.workerRepo.FindByID(ctx, req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Worker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch worker", err.Error())
	}

	log := &domain.WorkLog{
		ProjectID:       req.ProjectID,
		WorkerID:        req.WorkerID,
		Type:            domain.WorkLogType(req.Type),
		Note:            req.Note,
		DurationMinutes: req.DurationMinutes,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	}

	tableIDs := req.TableIDs
	if len(tableIDs) == 0 && req.TableID != "" {
		tableIDs = []string{req.TableID}
	}
	if log.Type == domain.WorkLogTypeTable && len(tableIDs) == 0 {
		return nil, response.NewValidationError("A table log must reference at least one table", "")
	}
	log.TableIDs = datatypes.JSONSlice[string](tableIDs)

	if req.Size != nil {
		size := domain.TableSize(*req.Size)
		log.Size = &size
	}
	if req.Status != nil {
		status := domain.TableStatus(*req.Status)
		log.Status = &status
	}
	if log.Type == domain.WorkLogTypeTable && log.Status == nil {
		done := domain.TableStatusDone
		log.Status = &done
	}

	if req.Timestamp != nil {
		log.Timestamp = *req.Timestamp
	} else {
		log.Timestamp = time.Now()
	}
	if log.DurationMinutes == 0 && log.StartTime != nil && log.EndTime != nil {
		log.DurationMinutes = log.EndTime.Sub(*log.StartTime).Minutes()
	}

	if err := s.workLogRepo.Create(ctx, log); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create work log", err.Error())
	}

	if log.Type == domain.WorkLogTypeTable {
		if err := s.applyTableStatus(ctx, log); err != nil {
			return nil, err
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementWorkLogCreated(string(log.Type))
	}
	s.logger.Info("Work log created",
		zap.String("log_id", log.ID.String()),
		zap.String("project_id", log.ProjectID.String()),
		zap.String("type", string(log.Type)),
	)

	return s.toResponse(log, project), nil
}

// UpdateLog produces a modified copy of the log marked unsynced. Table
// status is reapplied when the edit still references tables.
func (s *workLogServiceImpl) UpdateLog(ctx context.Context, logID uuid.UUID, req *dto.UpdateWorkLogRequest) (*dto.WorkLogResponse, error) {
	log, err := s.workLogRepo.FindByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Work log not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work log", err.Error())
	}

	if req.TableIDs != nil {
		log.TableIDs = datatypes.JSONSlice[string](req.TableIDs)
	}
	if req.Size != nil {
		size := domain.TableSize(*req.Size)
		log.Size = &size
	}
	if req.Status != nil {
		status := domain.TableStatus(*req.Status)
		log.Status = &status
	}
	if req.Note != nil {
		log.Note = *req.Note
	}
	if req.Timestamp != nil {
		log.Timestamp = *req.Timestamp
	}
	if req.DurationMinutes != nil {
		log.DurationMinutes = *req.DurationMinutes
	}
	log.Synced = false

	if err := s.workLogRepo.Update(ctx, log); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update work log", err.Error())
	}

	if log.Type == domain.WorkLogTypeTable && len(log.TableIDs) > 0 {
		if err := s.applyTableStatus(ctx, log); err != nil {
			return nil, err
		}
	}

	project, err := s.projectRepo.FindByID(ctx, log.ProjectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	return s.toResponse(log, project), nil
}

// ListByProject returns a project's logs in timestamp order
func (s *workLogServiceImpl) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*dto.WorkLogResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	logs, err := s.workLogRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work logs", err.Error())
	}

	responses := make([]*dto.WorkLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, s.toResponse(&logs[i], project))
	}
	return responses, nil
}

// ListByWorker returns a worker's logs across all projects
func (s *workLogServiceImpl) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]*dto.WorkLogResponse, error) {
	logs, err := s.workLogRepo.FindByWorkerID(ctx, workerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work logs", err.Error())
	}

	// Settings differ per project, so string output is computed against
	// each log's owning project.
	projects := map[uuid.UUID]*domain.Project{}
	responses := make([]*dto.WorkLogResponse, 0, len(logs))
	for i := range logs {
		project, ok := projects[logs[i].ProjectID]
		if !ok {
			project, err = s.projectRepo.FindByID(ctx, logs[i].ProjectID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
			}
			projects[logs[i].ProjectID] = project
		}
		responses = append(responses, s.toResponse(&logs[i], project))
	}
	return responses, nil
}

// applyTableStatus propagates a table log's status onto the referenced
// tables and recomputes the project's completed count from table state
func (s *workLogServiceImpl) applyTableStatus(ctx context.Context, log *domain.WorkLog) error {
	status := domain.TableStatusDone
	if log.Status != nil {
		status = *log.Status
	}
	if err := s.projectRepo.UpdateTableStatus(ctx, log.ProjectID, log.TableIDs, status, log.Size); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update table status", err.Error())
	}

	completed, err := s.projectRepo.CountTablesByStatus(ctx, log.ProjectID, domain.TableStatusDone)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to count completed tables", err.Error())
	}
	if err := s.projectRepo.SetCompletedTables(ctx, log.ProjectID, int(completed)); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update completed count", err.Error())
	}
	if s.metrics != nil {
		s.metrics.SetTablesCompleted(log.ProjectID.String(), int(completed))
	}
	return nil
}

func (s *workLogServiceImpl) toResponse(log *domain.WorkLog, project *domain.Project) *dto.WorkLogResponse {
	var settings *domain.ProjectSettings
	if project != nil {
		settings = project.Settings
	}
	return &dto.WorkLogResponse{
		WorkLog: *log,
		Strings: rules.LogStrings(log, settings),
	}
}
