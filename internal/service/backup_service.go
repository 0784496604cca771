package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"field-track-api/internal/backup"
	"field-track-api/internal/client"
	"field-track-api/internal/domain"
	"field-track-api/internal/dto"
	"field-track-api/internal/metrics"
	"field-track-api/internal/repository"
	"field-track-api/internal/response"
)

// BackupService defines the interface for backup export and import
type BackupService interface {
	Export(ctx context.Context) ([]byte, error)
	ExportToStore(ctx context.Context) (*dto.ExportUploadResponse, error)
	Import(ctx context.Context, payload []byte, mode backup.ImportMode) (*dto.RestoreResult, error)
	ExportLogsCSV(ctx context.Context) (string, error)
}

type backupServiceImpl struct {
	projectRepo repository.ProjectRepository
	workLogRepo repository.WorkLogRepository
	workerRepo  repository.WorkerRepository
	store       client.BackupStore
	exportedBy  string
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewBackupService creates a new instance of BackupService. store may be
// nil when no off-site bucket is configured; ExportToStore then fails
// with SERVICE_UNAVAILABLE while file export keeps working.
func NewBackupService(
	projectRepo repository.ProjectRepository,
	workLogRepo repository.WorkLogRepository,
	workerRepo repository.WorkerRepository,
	store client.BackupStore,
	exportedBy string,
	m *metrics.Metrics,
	logger *zap.Logger,
) BackupService {
	return &backupServiceImpl{
		projectRepo: projectRepo,
		workLogRepo: workLogRepo,
		workerRepo:  workerRepo,
		store:       store,
		exportedBy:  exportedBy,
		metrics:     m,
		logger:      logger,
	}
}

// Export snapshots all three collections into a versioned envelope
func (s *backupServiceImpl) Export(ctx context.Context) ([]byte, error) {
	data, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := backup.Encode(*data, s.exportedBy, time.Now())
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode backup", err.Error())
	}
	return payload, nil
}

// ExportToStore writes a full backup to the configured object store
func (s *backupServiceImpl) ExportToStore(ctx context.Context) (*dto.ExportUploadResponse, error) {
	if s.store == nil {
		return nil, response.NewAppError(response.ErrCodeUnavailable, "No backup store configured", "")
	}
	payload, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	key := s.store.BackupKey(time.Now())
	if err := s.store.Upload(ctx, key, payload); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload backup", err.Error())
	}
	s.logger.Info("Backup uploaded", zap.String("key", key))
	return &dto.ExportUploadResponse{Key: key}, nil
}

// Import applies a backup payload. Merge mode reconciles by id with the
// backup winning on conflict; replace mode discards current data first.
// A malformed payload aborts with no write. An app-name mismatch is
// applied anyway but flagged in the result.
func (s *backupServiceImpl) Import(ctx context.Context, payload []byte, mode backup.ImportMode) (*dto.RestoreResult, error) {
	if mode != backup.ImportModeMerge && mode != backup.ImportModeReplace {
		return nil, response.NewValidationError("Unknown import mode", string(mode))
	}

	envelope, err := backup.Decode(payload)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncrementBackupRestore(string(mode), "error")
		}
		return nil, response.NewValidationError("Malformed backup payload", err.Error())
	}

	result := &dto.RestoreResult{Mode: string(mode)}
	if envelope.Meta.AppName != "" && envelope.Meta.AppName != backup.AppName {
		result.Warning = fmt.Sprintf("backup was produced by %q, expected %q", envelope.Meta.AppName, backup.AppName)
		s.logger.Warn("Importing backup from a different app",
			zap.String("app_name", envelope.Meta.AppName),
		)
	}

	projects := envelope.Data.Projects
	logs := envelope.Data.Logs
	workers := envelope.Data.Workers

	if mode == backup.ImportModeMerge {
		current, err := s.collect(ctx)
		if err != nil {
			return nil, err
		}
		projects = backup.Merge(current.Projects, projects)
		logs = backup.Merge(current.Logs, logs)
		workers = backup.Merge(current.Workers, workers)
	}

	if err := s.projectRepo.ReplaceAll(ctx, projects); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementBackupRestore(string(mode), "error")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to restore projects", err.Error())
	}
	if err := s.workLogRepo.ReplaceAll(ctx, logs); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementBackupRestore(string(mode), "error")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to restore work logs", err.Error())
	}
	if err := s.workerRepo.ReplaceAll(ctx, workers); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementBackupRestore(string(mode), "error")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to restore workers", err.Error())
	}

	result.Projects = len(projects)
	result.Logs = len(logs)
	result.Workers = len(workers)

	if s.metrics != nil {
		s.metrics.IncrementBackupRestore(string(mode), "success")
	}
	s.logger.Info("Backup restored",
		zap.String("mode", string(mode)),
		zap.Int("projects", result.Projects),
		zap.Int("logs", result.Logs),
		zap.Int("workers", result.Workers),
	)
	return result, nil
}

// ExportLogsCSV renders every work log as CSV
func (s *backupServiceImpl) ExportLogsCSV(ctx context.Context) (string, error) {
	logs, err := s.workLogRepo.FindAll(ctx)
	if err != nil {
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to fetch work logs", err.Error())
	}
	workers, err := s.workerRepo.FindAll(ctx)
	if err != nil {
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to fetch workers", err.Error())
	}
	return backup.ExportLogsCSV(logs, workers), nil
}

func (s *backupServiceImpl) collect(ctx context.Context) (*backup.Data, error) {
	projectPtrs, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}
	projects := make([]domain.Project, 0, len(projectPtrs))
	for _, p := range projectPtrs {
		if p != nil {
			projects = append(projects, *p)
		}
	}
	logs, err := s.workLogRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work logs", err.Error())
	}
	workers, err := s.workerRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch workers", err.Error())
	}
	return &backup.Data{Projects: projects, Logs: logs, Workers: workers}, nil
}
