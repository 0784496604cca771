package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"field-track-api/internal/domain"
	"field-track-api/internal/dto"
	"field-track-api/internal/response"
)

func TestCreateWorker_ActiveByDefault(t *testing.T) {
	var created *domain.Worker
	workerRepo := &MockWorkerRepository{
		CreateFunc: func(ctx context.Context, worker *domain.Worker) error {
			created = worker
			return nil
		},
	}

	svc := NewWorkerService(workerRepo, zap.NewNop())
	rate := 15.0
	resp, err := svc.CreateWorker(context.Background(), &dto.CreateWorkerRequest{
		Name:       "Jana",
		Role:       "STRINGER",
		RateHourly: &rate,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, resp.IsActive)
	assert.Equal(t, domain.WorkerRoleStringer, resp.Role)
	require.NotNil(t, resp.RateHourly)
	assert.Equal(t, 15.0, *resp.RateHourly)
	assert.Nil(t, resp.RateString)
}

func TestUpdateWorker_PartialUpdate(t *testing.T) {
	workerID := uuid.New()
	workerRepo := &MockWorkerRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Worker, error) {
			return &domain.Worker{
				BaseModel: domain.BaseModel{ID: workerID},
				Name:      "Jana",
				Role:      domain.WorkerRoleStringer,
				IsActive:  true,
			}, nil
		},
	}

	svc := NewWorkerService(workerRepo, zap.NewNop())
	inactive := false
	resp, err := svc.UpdateWorker(context.Background(), workerID, &dto.UpdateWorkerRequest{
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	// Untouched fields survive
	assert.Equal(t, "Jana", resp.Name)
	assert.Equal(t, domain.WorkerRoleStringer, resp.Role)
}

func TestGetWorker_NotFound(t *testing.T) {
	workerRepo := &MockWorkerRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Worker, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewWorkerService(workerRepo, zap.NewNop())
	_, err := svc.GetWorker(context.Background(), uuid.New())

	require.Error(t, err)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}
