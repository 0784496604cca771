package service

import (
	"context"

	"github.com/google/uuid"

	"field-track-api/internal/domain"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc              func(ctx context.Context, project *domain.Project) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindAllFunc             func(ctx context.Context) ([]*domain.Project, error)
	UpdateFunc              func(ctx context.Context, project *domain.Project) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	AppendTablesFunc        func(ctx context.Context, tables []domain.Table) error
	MaxOrderIndexFunc       func(ctx context.Context, projectID uuid.UUID) (int, error)
	UpdateTableStatusFunc   func(ctx context.Context, projectID uuid.UUID, tableIDs []string, status domain.TableStatus, size *domain.TableSize) error
	CountTablesByStatusFunc func(ctx context.Context, projectID uuid.UUID, status domain.TableStatus) (int64, error)
	SetCompletedTablesFunc  func(ctx context.Context, projectID uuid.UUID, count int) error
	ReplaceAllFunc          func(ctx context.Context, projects []domain.Project) error
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]*domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) AppendTables(ctx context.Context, tables []domain.Table) error {
	if m.AppendTablesFunc != nil {
		return m.AppendTablesFunc(ctx, tables)
	}
	return nil
}

func (m *MockProjectRepository) MaxOrderIndex(ctx context.Context, projectID uuid.UUID) (int, error) {
	if m.MaxOrderIndexFunc != nil {
		return m.MaxOrderIndexFunc(ctx, projectID)
	}
	return -1, nil
}

func (m *MockProjectRepository) UpdateTableStatus(ctx context.Context, projectID uuid.UUID, tableIDs []string, status domain.TableStatus, size *domain.TableSize) error {
	if m.UpdateTableStatusFunc != nil {
		return m.UpdateTableStatusFunc(ctx, projectID, tableIDs, status, size)
	}
	return nil
}

func (m *MockProjectRepository) CountTablesByStatus(ctx context.Context, projectID uuid.UUID, status domain.TableStatus) (int64, error) {
	if m.CountTablesByStatusFunc != nil {
		return m.CountTablesByStatusFunc(ctx, projectID, status)
	}
	return 0, nil
}

func (m *MockProjectRepository) SetCompletedTables(ctx context.Context, projectID uuid.UUID, count int) error {
	if m.SetCompletedTablesFunc != nil {
		return m.SetCompletedTablesFunc(ctx, projectID, count)
	}
	return nil
}

func (m *MockProjectRepository) ReplaceAll(ctx context.Context, projects []domain.Project) error {
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, projects)
	}
	return nil
}

// MockWorkLogRepository is a mock implementation of WorkLogRepository
type MockWorkLogRepository struct {
	CreateFunc          func(ctx context.Context, log *domain.WorkLog) error
	UpdateFunc          func(ctx context.Context, log *domain.WorkLog) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.WorkLog, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]domain.WorkLog, error)
	FindByWorkerIDFunc  func(ctx context.Context, workerID uuid.UUID) ([]domain.WorkLog, error)
	FindAllFunc         func(ctx context.Context) ([]domain.WorkLog, error)
	ReplaceAllFunc      func(ctx context.Context, logs []domain.WorkLog) error
}

func (m *MockWorkLogRepository) Create(ctx context.Context, log *domain.WorkLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	return nil
}

func (m *MockWorkLogRepository) Update(ctx context.Context, log *domain.WorkLog) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, log)
	}
	return nil
}

func (m *MockWorkLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkLog, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkLogRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.WorkLog, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockWorkLogRepository) FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]domain.WorkLog, error) {
	if m.FindByWorkerIDFunc != nil {
		return m.FindByWorkerIDFunc(ctx, workerID)
	}
	return nil, nil
}

func (m *MockWorkLogRepository) FindAll(ctx context.Context) ([]domain.WorkLog, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockWorkLogRepository) ReplaceAll(ctx context.Context, logs []domain.WorkLog) error {
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, logs)
	}
	return nil
}

// MockWorkerRepository is a mock implementation of WorkerRepository
type MockWorkerRepository struct {
	CreateFunc     func(ctx context.Context, worker *domain.Worker) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Worker, error)
	FindAllFunc    func(ctx context.Context) ([]domain.Worker, error)
	UpdateFunc     func(ctx context.Context, worker *domain.Worker) error
	ReplaceAllFunc func(ctx context.Context, workers []domain.Worker) error
}

func (m *MockWorkerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, worker)
	}
	return nil
}

func (m *MockWorkerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkerRepository) FindAll(ctx context.Context) ([]domain.Worker, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockWorkerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, worker)
	}
	return nil
}

func (m *MockWorkerRepository) ReplaceAll(ctx context.Context, workers []domain.Worker) error {
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, workers)
	}
	return nil
}
