package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"field-track-api/internal/domain"
	"field-track-api/internal/dto"
	"field-track-api/internal/repository"
	"field-track-api/internal/response"
)

// WorkerService defines the interface for worker business logic
type WorkerService interface {
	CreateWorker(ctx context.Context, req *dto.CreateWorkerRequest) (*dto.WorkerResponse, error)
	GetWorker(ctx context.Context, workerID uuid.UUID) (*dto.WorkerResponse, error)
	ListWorkers(ctx context.Context) ([]*dto.WorkerResponse, error)
	UpdateWorker(ctx context.Context, workerID uuid.UUID, req *dto.UpdateWorkerRequest) (*dto.WorkerResponse, error)
}

type workerServiceImpl struct {
	workerRepo repository.WorkerRepository
	logger     *zap.Logger
}

// NewWorkerService creates a new instance of WorkerService
func NewWorkerService(workerRepo repository.WorkerRepository, logger *zap.Logger) WorkerService {
	return &workerServiceImpl{
		workerRepo: workerRepo,
		logger:     logger,
	}
}

// CreateWorker registers a crew member
func (s *workerServiceImpl) CreateWorker(ctx context.Context, req *dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	worker := &domain.Worker{
		Name:        req.Name,
		Role:        domain.WorkerRole(req.Role),
		RateHourly:  req.RateHourly,
		RateString:  req.RateString,
		IsActive:    true,
		AvatarColor: req.AvatarColor,
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create worker", err.Error())
	}

	s.logger.Info("Worker created",
		zap.String("worker_id", worker.ID.String()),
		zap.String("role", string(worker.Role)),
	)
	return toWorkerResponse(worker), nil
}

// GetWorker loads a single worker
func (s *workerServiceImpl) GetWorker(ctx context.Context, workerID uuid.UUID) (*dto.WorkerResponse, error) {
	worker, err := s.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Worker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch worker", err.Error())
	}
	return toWorkerResponse(worker), nil
}

// ListWorkers returns all crew members, active or not
func (s *workerServiceImpl) ListWorkers(ctx context.Context) ([]*dto.WorkerResponse, error) {
	workers, err := s.workerRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch workers", err.Error())
	}
	responses := make([]*dto.WorkerResponse, 0, len(workers))
	for i := range workers {
		responses = append(responses, toWorkerResponse(&workers[i]))
	}
	return responses, nil
}

// UpdateWorker changes worker fields in place
func (s *workerServiceImpl) UpdateWorker(ctx context.Context, workerID uuid.UUID, req *dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	worker, err := s.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Worker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch worker", err.Error())
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.Role != nil {
		worker.Role = domain.WorkerRole(*req.Role)
	}
	if req.RateHourly != nil {
		worker.RateHourly = req.RateHourly
	}
	if req.RateString != nil {
		worker.RateString = req.RateString
	}
	if req.IsActive != nil {
		worker.IsActive = *req.IsActive
	}
	if req.AvatarColor != nil {
		worker.AvatarColor = *req.AvatarColor
	}

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update worker", err.Error())
	}
	return toWorkerResponse(worker), nil
}

func toWorkerResponse(worker *domain.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:          worker.ID,
		Name:        worker.Name,
		Role:        worker.Role,
		RateHourly:  worker.RateHourly,
		RateString:  worker.RateString,
		IsActive:    worker.IsActive,
		AvatarColor: worker.AvatarColor,
		CreatedAt:   worker.CreatedAt,
	}
}
