package dto

import (
	"time"

	"github.com/google/uuid"

	"field-track-api/internal/domain"
	"field-track-api/internal/tables"
)

// TableRangeSpec describes a generated run of table labels,
// prefix + zero-padded number + suffix. Descending ranges are allowed.
type TableRangeSpec struct {
	Prefix string  `json:"prefix"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Suffix string  `json:"suffix"`
	Size   *string `json:"size,omitempty" binding:"omitempty,oneof=S M L"`
}

// CreateProjectRequest creates a project with an optional initial table
// inventory from exactly one source: free text, a numeric range or CSV.
type CreateProjectRequest struct {
	Name        string                  `json:"name" binding:"required,min=2,max=100"`
	RawTables   string                  `json:"rawTables,omitempty"`
	CSVTables   string                  `json:"csvTables,omitempty"`
	Range       *TableRangeSpec         `json:"range,omitempty"`
	TotalTables *int                    `json:"totalTables,omitempty"`
	Settings    *domain.ProjectSettings `json:"settings,omitempty"`
}

// AppendTablesRequest adds tables to an existing project from one of the
// same sources as project creation
type AppendTablesRequest struct {
	RawTables string          `json:"rawTables,omitempty"`
	CSVTables string          `json:"csvTables,omitempty"`
	Range     *TableRangeSpec `json:"range,omitempty"`
}

// ProjectResponse is the project representation returned by the API
type ProjectResponse struct {
	ID              uuid.UUID               `json:"projectId"`
	Name            string                  `json:"name"`
	Mode            domain.ProjectMode      `json:"mode"`
	TotalTables     *int                    `json:"totalTables,omitempty"`
	CompletedTables int                     `json:"completedTables"`
	TotalStrings    float64                 `json:"totalStrings"`
	EstimatedKwp    float64                 `json:"estimatedKwp"`
	Tables          []domain.Table          `json:"tables,omitempty"`
	Sections        []tables.Section        `json:"sections,omitempty"`
	Settings        *domain.ProjectSettings `json:"settings,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}
