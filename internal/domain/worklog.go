package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkLogType discriminates piecework table events from hourly time entries
type WorkLogType string

const (
	WorkLogTypeTable  WorkLogType = "TABLE"
	WorkLogTypeHourly WorkLogType = "HOURLY"
)

// WorkLog is one append-only work event. Logs are immutable in principle;
// an edit produces a modified copy with Synced=false. The engines never
// mutate a log.
//
// An HOURLY log with zero duration and a non-empty note is a chat message,
// not work. IsMessage is the single predicate for that rule; aggregators
// and views must not re-derive it from field combinations.
type WorkLog struct {
	BaseModel
	ProjectID uuid.UUID   `gorm:"type:uuid;not null;index:idx_work_logs_project_id" json:"projectId"`
	WorkerID  uuid.UUID   `gorm:"type:uuid;not null;index:idx_work_logs_worker_id" json:"workerId"`
	Type      WorkLogType `gorm:"type:varchar(10);not null" json:"type"`
	// TableIDs is the normalized list of tables this event touched.
	// The legacy singular tableId field is accepted at the JSON boundary
	// only and folded into this list.
	TableIDs        datatypes.JSONSlice[string] `gorm:"type:json" json:"tableIds,omitempty"`
	Size            *TableSize                  `gorm:"type:varchar(1)" json:"size,omitempty"`
	Status          *TableStatus                `gorm:"type:varchar(20)" json:"status,omitempty"`
	Note            string                      `gorm:"type:text" json:"note,omitempty"`
	Timestamp       time.Time                   `gorm:"not null;index:idx_work_logs_timestamp" json:"timestamp"`
	StartTime       *time.Time                  `json:"startTime,omitempty"`
	EndTime         *time.Time                  `json:"endTime,omitempty"`
	DurationMinutes float64                     `gorm:"not null;default:0" json:"durationMinutes"`
	Synced          bool                        `gorm:"not null;default:false" json:"synced"`
}

// TableName specifies the table name for WorkLog
func (WorkLog) TableName() string {
	return "work_logs"
}

// EntityID returns the merge key used by backup reconciliation
func (l WorkLog) EntityID() string {
	return l.ID.String()
}

// IsMessage reports whether this log is a chat message rather than work
func (l *WorkLog) IsMessage() bool {
	return l.Type == WorkLogTypeHourly && l.DurationMinutes == 0 && l.Note != ""
}

// TableCount returns the number of tables this event touched
func (l *WorkLog) TableCount() int {
	return len(l.TableIDs)
}

// UnmarshalJSON folds the legacy singular tableId field into TableIDs.
// TableIDs wins when both are present.
func (l *WorkLog) UnmarshalJSON(data []byte) error {
	type workLogAlias WorkLog
	aux := struct {
		*workLogAlias
		LegacyTableID string `json:"tableId"`
	}{workLogAlias: (*workLogAlias)(l)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(l.TableIDs) == 0 && aux.LegacyTableID != "" {
		l.TableIDs = datatypes.JSONSlice[string]{aux.LegacyTableID}
	}
	return nil
}
