package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"field-track-api/internal/domain"
	"field-track-api/internal/dto"
	"field-track-api/internal/metrics"
	"field-track-api/internal/repository"
	"field-track-api/internal/response"
	"field-track-api/internal/rules"
	"field-track-api/internal/tables"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	AppendTables(ctx context.Context, projectID uuid.UUID, req *dto.AppendTablesRequest) (*dto.ProjectResponse, error)
}

type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateProject creates a project and its initial table inventory from
// one of the three sources. The mode is fixed here: STRICT when at least
// one table came in with a predefined size, FLEXIBLE otherwise.
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	projectID := uuid.New()

	inventory, err := buildInventory(projectID, req.RawTables, req.CSVTables, req.Range, 0)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		Name:        req.Name,
		Mode:        modeForTables(inventory),
		TotalTables: req.TotalTables,
		Tables:      inventory,
		Settings:    req.Settings,
	}
	project.ID = projectID
	if project.TotalTables == nil && len(inventory) > 0 {
		total := len(inventory)
		project.TotalTables = &total
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}
	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("mode", string(project.Mode)),
		zap.Int("tables", len(inventory)),
	)

	return toProjectResponse(project, true), nil
}

// GetProject loads a project with its table inventory and sections
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	return toProjectResponse(project, true), nil
}

// ListProjects returns all projects without their table inventories
func (s *projectServiceImpl) ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		if project == nil {
			continue
		}
		responses = append(responses, toProjectResponse(project, false))
	}
	return responses, nil
}

// DeleteProject removes a whole project. Individual tables are never
// deleted, only the project as a unit.
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}
	s.logger.Info("Project deleted", zap.String("project_id", projectID.String()))
	return nil
}

// AppendTables adds a batch of tables after the existing inventory.
// The project mode stays as fixed at creation.
func (s *projectServiceImpl) AppendTables(ctx context.Context, projectID uuid.UUID, req *dto.AppendTablesRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	maxIndex, err := s.projectRepo.MaxOrderIndex(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to determine table order", err.Error())
	}

	batch, err := buildInventory(projectID, req.RawTables, req.CSVTables, req.Range, maxIndex+1)
	if err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, response.NewValidationError("No tables to append", "")
	}

	if err := s.projectRepo.AppendTables(ctx, batch); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to append tables", err.Error())
	}

	project, err = s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reload project", err.Error())
	}
	return toProjectResponse(project, true), nil
}

// buildInventory constructs a table batch from whichever source the
// request carries. Empty input is not an error; it yields no tables.
func buildInventory(projectID uuid.UUID, rawText, csvText string, rangeSpec *dto.TableRangeSpec, offset int) ([]domain.Table, error) {
	switch {
	case rawText != "":
		parsed := tables.ParseRawInput(projectID, rawText)
		return tables.Reindex(parsed.Tables, offset), nil
	case rangeSpec != nil:
		var size *domain.TableSize
		if rangeSpec.Size != nil {
			size = tables.ParseSizeToken(*rangeSpec.Size)
			if size == nil {
				return nil, response.NewValidationError("Unknown table size", *rangeSpec.Size)
			}
		}
		return tables.GenerateRange(projectID, rangeSpec.Prefix, rangeSpec.Start, rangeSpec.End, rangeSpec.Suffix, size, offset), nil
	case csvText != "":
		return tables.Reindex(tables.ParseCSVImport(projectID, csvText), offset), nil
	default:
		return nil, nil
	}
}

// modeForTables derives the project mode from its initial inventory
func modeForTables(inventory []domain.Table) domain.ProjectMode {
	for i := range inventory {
		if inventory[i].Size != nil {
			return domain.ProjectModeStrict
		}
	}
	return domain.ProjectModeFlexible
}

// toProjectResponse converts a domain project, optionally with its full
// table inventory and section grouping
func toProjectResponse(project *domain.Project, includeTables bool) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:              project.ID,
		Name:            project.Name,
		Mode:            project.Mode,
		TotalTables:     project.TotalTables,
		CompletedTables: project.CompletedTables,
		TotalStrings:    rules.TotalStringsFromTables(project.Tables, project.Settings),
		Settings:        project.Settings,
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}
	resp.EstimatedKwp = rules.StringsToKwp(resp.TotalStrings, project.Settings)
	if includeTables {
		resp.Tables = tables.SortByOrder(project.Tables)
		resp.Sections = tables.GroupBySection(project.Tables)
	}
	return resp
}
