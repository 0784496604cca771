// Package job holds the scheduled background jobs.
package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"field-track-api/internal/domain"
	"field-track-api/internal/repository"
)

// ReconcileJob recomputes each project's completed-table count from
// actual table state. The count is normally maintained inline on every
// log write; this job repairs drift from restores and manual edits.
// It implements cron.Job.
type ReconcileJob struct {
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
	timeout     time.Duration
}

// NewReconcileJob creates a new instance of ReconcileJob
func NewReconcileJob(projectRepo repository.ProjectRepository, logger *zap.Logger) *ReconcileJob {
	return &ReconcileJob{
		projectRepo: projectRepo,
		logger:      logger,
		timeout:     2 * time.Minute,
	}
}

// Run executes one reconcile pass over all projects
func (j *ReconcileJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	projects, err := j.projectRepo.FindAll(ctx)
	if err != nil {
		j.logger.Error("Reconcile pass failed to list projects", zap.Error(err))
		return
	}

	repaired := 0
	for _, project := range projects {
		if project == nil {
			continue
		}
		completed, err := j.projectRepo.CountTablesByStatus(ctx, project.ID, domain.TableStatusDone)
		if err != nil {
			j.logger.Error("Reconcile pass failed to count tables",
				zap.String("project_id", project.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if int(completed) == project.CompletedTables {
			continue
		}

		j.logger.Warn("Completed-table count drifted",
			zap.String("project_id", project.ID.String()),
			zap.Int("stored", project.CompletedTables),
			zap.Int64("actual", completed),
		)
		if err := j.projectRepo.SetCompletedTables(ctx, project.ID, int(completed)); err != nil {
			j.logger.Error("Reconcile pass failed to repair count",
				zap.String("project_id", project.ID.String()),
				zap.Error(err),
			)
			continue
		}
		repaired++
	}

	if repaired > 0 {
		j.logger.Info("Reconcile pass repaired projects", zap.Int("repaired", repaired))
	}
}
