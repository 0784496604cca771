package domain

import (
	"github.com/google/uuid"
)

// TableSize represents the physical size class of a mounting table
type TableSize string

const (
	TableSizeS TableSize = "S"
	TableSizeM TableSize = "M"
	TableSizeL TableSize = "L"
)

// TableStatus represents the installation state of a table
type TableStatus string

const (
	TableStatusPending    TableStatus = "PENDING"
	TableStatusInProgress TableStatus = "IN_PROGRESS"
	TableStatusDone       TableStatus = "DONE"
	TableStatusIssue      TableStatus = "ISSUE"
)

// Table represents one mounting table in the field.
//
// ID is generated from the sanitized label plus a positional suffix and is
// unique within a project. Label keeps the exact user-entered text and is the
// display source of truth. OrderIndex is the only ordering source of truth;
// it is never re-derived from the label.
type Table struct {
	ID         string      `gorm:"type:varchar(255);primaryKey" json:"id"`
	ProjectID  uuid.UUID   `gorm:"type:uuid;primaryKey;index:idx_tables_project_id" json:"projectId"`
	Label      string      `gorm:"type:varchar(255);not null" json:"label"`
	OrderIndex int         `gorm:"not null;index:idx_tables_order" json:"orderIndex"`
	Size       *TableSize  `gorm:"type:varchar(1)" json:"size,omitempty"`
	Status     TableStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
}

// TableName specifies the table name for Table
func (Table) TableName() string {
	return "field_tables"
}

// EntityID returns the merge key for backup reconciliation
func (t Table) EntityID() string {
	return t.ID
}
