package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"field-track-api/internal/domain"
)

// WorkerRepository defines data access for workers
type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error)
	FindAll(ctx context.Context) ([]domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	ReplaceAll(ctx context.Context, workers []domain.Worker) error
}

type workerRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new instance of WorkerRepository
func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

func (r *workerRepositoryImpl) Create(ctx context.Context, worker *domain.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *workerRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error) {
	var worker domain.Worker
	if err := r.db.WithContext(ctx).First(&worker, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepositoryImpl) FindAll(ctx context.Context) ([]domain.Worker, error) {
	var workers []domain.Worker
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *workerRepositoryImpl) Update(ctx context.Context, worker *domain.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

// ReplaceAll swaps the whole worker collection in one transaction
func (r *workerRepositoryImpl) ReplaceAll(ctx context.Context, workers []domain.Worker) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Worker{}).Error; err != nil {
			return err
		}
		if len(workers) == 0 {
			return nil
		}
		return tx.Create(&workers).Error
	})
}
