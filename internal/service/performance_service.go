package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"field-track-api/internal/domain"
	"field-track-api/internal/dto"
	"field-track-api/internal/economics"
	"field-track-api/internal/performance"
	"field-track-api/internal/repository"
	"field-track-api/internal/response"
)

// PerformanceService defines the interface for aggregation, forecasting
// and earnings queries
type PerformanceService interface {
	GetPerformance(ctx context.Context, projectID uuid.UUID, timeRange performance.TimeRange) (*performance.ProjectPerformance, error)
	GetForecast(ctx context.Context, projectID uuid.UUID) (*performance.Forecast, error)
	GetWorkerEarnings(ctx context.Context, workerID uuid.UUID) (*dto.EarningsResponse, error)
}

type performanceServiceImpl struct {
	projectRepo repository.ProjectRepository
	workLogRepo repository.WorkLogRepository
	workerRepo  repository.WorkerRepository
	redis       *redis.Client
	snapshotTTL time.Duration
	logger      *zap.Logger
}

// NewPerformanceService creates a new instance of PerformanceService.
// redisClient may be nil; caching is then skipped entirely.
func NewPerformanceService(
	projectRepo repository.ProjectRepository,
	workLogRepo repository.WorkLogRepository,
	workerRepo repository.WorkerRepository,
	redisClient *redis.Client,
	snapshotTTL time.Duration,
	logger *zap.Logger,
) PerformanceService {
	return &performanceServiceImpl{
		projectRepo: projectRepo,
		workLogRepo: workLogRepo,
		workerRepo:  workerRepo,
		redis:       redisClient,
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

// GetPerformance aggregates a project's logs over the requested window.
// Results are cached in Redis with a short TTL since the underlying logs
// only ever grow within a window.
func (s *performanceServiceImpl) GetPerformance(ctx context.Context, projectID uuid.UUID, timeRange performance.TimeRange) (*performance.ProjectPerformance, error) {
	cacheKey := fmt.Sprintf("perf:%s:%s", projectID, timeRange)
	if cached := s.readCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

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
	workers, err := s.workerRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch workers", err.Error())
	}

	perf := performance.Calculate(logs, workers, timeRange, project.Settings, time.Now())
	if project.TotalTables != nil && *project.TotalTables > 0 {
		perf.CompletedPercent = float64(project.CompletedTables) / float64(*project.TotalTables) * 100
	}

	s.writeCache(ctx, cacheKey, &perf)
	return &perf, nil
}

// GetForecast projects completion from the trailing week's velocity
func (s *performanceServiceImpl) GetForecast(ctx context.Context, projectID uuid.UUID) (*performance.Forecast, error) {
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

	forecast := performance.ForecastCompletion(project, logs, time.Now())
	return &forecast, nil
}

// GetWorkerEarnings sums a worker's pay across all projects
func (s *performanceServiceImpl) GetWorkerEarnings(ctx context.Context, workerID uuid.UUID) (*dto.EarningsResponse, error) {
	worker, err := s.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Worker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch worker", err.Error())
	}
	logs, err := s.workLogRepo.FindByWorkerID(ctx, workerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work logs", err.Error())
	}
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

	return &dto.EarningsResponse{
		WorkerID: workerID,
		Earnings: economics.CalculateEarnings(logs, worker, projects),
	}, nil
}

func (s *performanceServiceImpl) readCache(ctx context.Context, key string) *performance.ProjectPerformance {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Performance cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	var perf performance.ProjectPerformance
	if err := json.Unmarshal(data, &perf); err != nil {
		s.logger.Warn("Performance cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &perf
}

func (s *performanceServiceImpl) writeCache(ctx context.Context, key string, perf *performance.ProjectPerformance) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(perf)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.snapshotTTL).Err(); err != nil {
		s.logger.Warn("Performance cache write failed", zap.String("key", key), zap.Error(err))
	}
}
