package domain

// ProjectMode tells whether table sizes were fixed at project setup
// (STRICT) or are chosen per work event (FLEXIBLE). It is derived once
// at creation and never re-evaluated.
type ProjectMode string

const (
	ProjectModeFlexible ProjectMode = "FLEXIBLE"
	ProjectModeStrict   ProjectMode = "STRICT"
)

// ProjectSettings holds the per-project overrides for the rules engine.
// Absent values fall back to the global defaults (S=1.0, M=1.5, L=2.0
// strings per table, 19.6 kWp per string). Stored as a single JSON column
// so the backup wire format matches the exported shape exactly.
type ProjectSettings struct {
	StringsPerTable map[TableSize]float64 `json:"stringsPerTable,omitempty"`
	Default         *float64              `json:"default,omitempty"`
	KwpPerString    *float64              `json:"kwpPerString,omitempty"`
	Currency        string                `json:"currency,omitempty"`
}

// Project represents one FVE park installation project
type Project struct {
	BaseModel
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Mode        ProjectMode `gorm:"type:varchar(20);not null;default:'FLEXIBLE'" json:"mode"`
	TotalTables *int        `json:"totalTables,omitempty"`
	// CompletedTables is a materialized count of tables with status DONE.
	// Recomputed from the table rows on every status mutation, never
	// incremented in place.
	CompletedTables int              `gorm:"not null;default:0" json:"completedTables"`
	Tables          []Table          `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tables,omitempty"`
	Settings        *ProjectSettings `gorm:"serializer:json" json:"settings,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// EntityID returns the merge key used by backup reconciliation
func (p Project) EntityID() string {
	return p.ID.String()
}
