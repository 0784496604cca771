package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"field-track-api/internal/domain"
)

// WorkLogRepository defines data access for the append-only work log
type WorkLogRepository interface {
	Create(ctx context.Context, log *domain.WorkLog) error
	Update(ctx context.Context, log *domain.WorkLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkLog, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.WorkLog, error)
	FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]domain.WorkLog, error)
	FindAll(ctx context.Context) ([]domain.WorkLog, error)
	ReplaceAll(ctx context.Context, logs []domain.WorkLog) error
}

type workLogRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkLogRepository creates a new instance of WorkLogRepository
func NewWorkLogRepository(db *gorm.DB) WorkLogRepository {
	return &workLogRepositoryImpl{db: db}
}

func (r *workLogRepositoryImpl) Create(ctx context.Context, log *domain.WorkLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *workLogRepositoryImpl) Update(ctx context.Context, log *domain.WorkLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *workLogRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkLog, error) {
	var log domain.WorkLog
	if err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *workLogRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.WorkLog, error) {
	var logs []domain.WorkLog
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("timestamp ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *workLogRepositoryImpl) FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]domain.WorkLog, error) {
	var logs []domain.WorkLog
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("timestamp ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *workLogRepositoryImpl) FindAll(ctx context.Context) ([]domain.WorkLog, error) {
	var logs []domain.WorkLog
	if err := r.db.WithContext(ctx).Order("timestamp ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ReplaceAll swaps the whole log collection in one transaction
func (r *workLogRepositoryImpl) ReplaceAll(ctx context.Context, logs []domain.WorkLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.WorkLog{}).Error; err != nil {
			return err
		}
		if len(logs) == 0 {
			return nil
		}
		return tx.Create(&logs).Error
	})
}
