package handler

import (
	"context"

	"github.com/google/uuid"

	"field-track-api/internal/backup"
	"field-track-api/internal/dto"
)

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	CreateProjectFunc func(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjectFunc    func(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error)
	ListProjectsFunc  func(ctx context.Context) ([]*dto.ProjectResponse, error)
	DeleteProjectFunc func(ctx context.Context, projectID uuid.UUID) error
	AppendTablesFunc  func(ctx context.Context, projectID uuid.UUID, req *dto.AppendTablesRequest) (*dto.ProjectResponse, error)
}

func (m *MockProjectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockProjectService) ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID)
	}
	return nil
}

func (m *MockProjectService) AppendTables(ctx context.Context, projectID uuid.UUID, req *dto.AppendTablesRequest) (*dto.ProjectResponse, error) {
	if m.AppendTablesFunc != nil {
		return m.AppendTablesFunc(ctx, projectID, req)
	}
	return nil, nil
}

// MockBackupService is a mock implementation of service.BackupService
type MockBackupService struct {
	ExportFunc        func(ctx context.Context) ([]byte, error)
	ExportToStoreFunc func(ctx context.Context) (*dto.ExportUploadResponse, error)
	ImportFunc        func(ctx context.Context, payload []byte, mode backup.ImportMode) (*dto.RestoreResult, error)
	ExportLogsCSVFunc func(ctx context.Context) (string, error)
}

func (m *MockBackupService) Export(ctx context.Context) ([]byte, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackupService) ExportToStore(ctx context.Context) (*dto.ExportUploadResponse, error) {
	if m.ExportToStoreFunc != nil {
		return m.ExportToStoreFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackupService) Import(ctx context.Context, payload []byte, mode backup.ImportMode) (*dto.RestoreResult, error) {
	if m.ImportFunc != nil {
		return m.ImportFunc(ctx, payload, mode)
	}
	return nil, nil
}

func (m *MockBackupService) ExportLogsCSV(ctx context.Context) (string, error) {
	if m.ExportLogsCSVFunc != nil {
		return m.ExportLogsCSVFunc(ctx)
	}
	return "", nil
}
