package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"field-track-api/internal/domain"
)

// ProjectRepository defines data access for projects and their tables
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindAll(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	AppendTables(ctx context.Context, tables []domain.Table) error
	MaxOrderIndex(ctx context.Context, projectID uuid.UUID) (int, error)
	UpdateTableStatus(ctx context.Context, projectID uuid.UUID, tableIDs []string, status domain.TableStatus, size *domain.TableSize) error
	CountTablesByStatus(ctx context.Context, projectID uuid.UUID, status domain.TableStatus) (int64, error)
	SetCompletedTables(ctx context.Context, projectID uuid.UUID, count int) error
	ReplaceAll(ctx context.Context, projects []domain.Project) error
}

type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create persists a project together with its table inventory
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindByID loads a project with its tables in canonical order
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).
		Preload("Tables", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAll loads all projects with their tables in canonical order
func (r *projectRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	err := r.db.WithContext(ctx).
		Preload("Tables", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Order("created_at ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update saves changed project fields
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project and, through the FK constraint, its tables
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&domain.Table{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Project{}, "id = ?", id).Error
	})
}

// AppendTables inserts a batch of new tables
func (r *projectRepositoryImpl) AppendTables(ctx context.Context, tables []domain.Table) error {
	if len(tables) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tables).Error
}

// MaxOrderIndex returns the highest order index in a project, -1 when empty
func (r *projectRepositoryImpl) MaxOrderIndex(ctx context.Context, projectID uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("project_id = ?", projectID).
		Select("MAX(order_index)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// UpdateTableStatus applies a status (and optionally a size) to a set of
// tables within one project
func (r *projectRepositoryImpl) UpdateTableStatus(ctx context.Context, projectID uuid.UUID, tableIDs []string, status domain.TableStatus, size *domain.TableSize) error {
	if len(tableIDs) == 0 {
		return nil
	}
	updates := map[string]interface{}{"status": status}
	if size != nil {
		updates["size"] = *size
	}
	return r.db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("project_id = ? AND id IN ?", projectID, tableIDs).
		Updates(updates).Error
}

// CountTablesByStatus counts a project's tables in the given status
func (r *projectRepositoryImpl) CountTablesByStatus(ctx context.Context, projectID uuid.UUID, status domain.TableStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("project_id = ? AND status = ?", projectID, status).
		Count(&count).Error
	return count, err
}

// SetCompletedTables stores the recomputed completed-table count
func (r *projectRepositoryImpl) SetCompletedTables(ctx context.Context, projectID uuid.UUID, count int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", projectID).
		Update("completed_tables", count).Error
}

// ReplaceAll swaps the whole project collection, tables included, in one
// transaction. Used by backup restore, where each collection is replaced
// as a unit.
func (r *projectRepositoryImpl) ReplaceAll(ctx context.Context, projects []domain.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Table{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&domain.Project{}).Error; err != nil {
			return err
		}
		if len(projects) == 0 {
			return nil
		}
		return tx.Create(&projects).Error
	})
}
