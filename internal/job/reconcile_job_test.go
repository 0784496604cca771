package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"field-track-api/internal/domain"
)

type mockProjectRepo struct {
	FindAllFunc             func(ctx context.Context) ([]*domain.Project, error)
	CountTablesByStatusFunc func(ctx context.Context, projectID uuid.UUID, status domain.TableStatus) (int64, error)
	SetCompletedTablesFunc  func(ctx context.Context, projectID uuid.UUID, count int) error
}

func (m *mockProjectRepo) Create(ctx context.Context, project *domain.Project) error { return nil }
func (m *mockProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return nil, nil
}
func (m *mockProjectRepo) FindAll(ctx context.Context) ([]*domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}
func (m *mockProjectRepo) Update(ctx context.Context, project *domain.Project) error { return nil }
func (m *mockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (m *mockProjectRepo) AppendTables(ctx context.Context, tables []domain.Table) error {
	return nil
}
func (m *mockProjectRepo) MaxOrderIndex(ctx context.Context, projectID uuid.UUID) (int, error) {
	return -1, nil
}
func (m *mockProjectRepo) UpdateTableStatus(ctx context.Context, projectID uuid.UUID, tableIDs []string, status domain.TableStatus, size *domain.TableSize) error {
	return nil
}
func (m *mockProjectRepo) CountTablesByStatus(ctx context.Context, projectID uuid.UUID, status domain.TableStatus) (int64, error) {
	if m.CountTablesByStatusFunc != nil {
		return m.CountTablesByStatusFunc(ctx, projectID, status)
	}
	return 0, nil
}
func (m *mockProjectRepo) SetCompletedTables(ctx context.Context, projectID uuid.UUID, count int) error {
	if m.SetCompletedTablesFunc != nil {
		return m.SetCompletedTablesFunc(ctx, projectID, count)
	}
	return nil
}
func (m *mockProjectRepo) ReplaceAll(ctx context.Context, projects []domain.Project) error {
	return nil
}

func TestReconcileJob_RepairsDriftedCount(t *testing.T) {
	driftedID := uuid.New()
	okID := uuid.New()

	var repaired map[uuid.UUID]int
	repo := &mockProjectRepo{
		FindAllFunc: func(ctx context.Context) ([]*domain.Project, error) {
			return []*domain.Project{
				{BaseModel: domain.BaseModel{ID: driftedID}, CompletedTables: 10},
				{BaseModel: domain.BaseModel{ID: okID}, CompletedTables: 4},
			}, nil
		},
		CountTablesByStatusFunc: func(ctx context.Context, projectID uuid.UUID, status domain.TableStatus) (int64, error) {
			if projectID == driftedID {
				return 7, nil
			}
			return 4, nil
		},
		SetCompletedTablesFunc: func(ctx context.Context, projectID uuid.UUID, count int) error {
			if repaired == nil {
				repaired = map[uuid.UUID]int{}
			}
			repaired[projectID] = count
			return nil
		},
	}

	NewReconcileJob(repo, zap.NewNop()).Run()

	assert.Equal(t, map[uuid.UUID]int{driftedID: 7}, repaired)
}

func TestReconcileJob_NoDriftNoWrites(t *testing.T) {
	var writes int
	repo := &mockProjectRepo{
		FindAllFunc: func(ctx context.Context) ([]*domain.Project, error) {
			return []*domain.Project{{BaseModel: domain.BaseModel{ID: uuid.New()}, CompletedTables: 0}}, nil
		},
		SetCompletedTablesFunc: func(ctx context.Context, projectID uuid.UUID, count int) error {
			writes++
			return nil
		},
	}

	NewReconcileJob(repo, zap.NewNop()).Run()

	assert.Equal(t, 0, writes)
}
