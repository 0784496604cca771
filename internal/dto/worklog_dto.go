package dto

import (
	"time"

	"github.com/google/uuid"

	"field-track-api/internal/domain"
)

// CreateWorkLogRequest appends one work event. TABLE logs reference the
// tables they touched; the legacy singular tableId is still accepted and
// folded into tableIds. An HOURLY log with zero duration and a note is a
// chat message.
type CreateWorkLogRequest struct {
	ProjectID       uuid.UUID  `json:"projectId" binding:"required"`
	WorkerID        uuid.UUID  `json:"workerId" binding:"required"`
	Type            string     `json:"type" binding:"required,oneof=TABLE HOURLY"`
	TableIDs        []string   `json:"tableIds,omitempty"`
	TableID         string     `json:"tableId,omitempty"`
	Size            *string    `json:"size,omitempty" binding:"omitempty,oneof=S M L"`
	Status          *string    `json:"status,omitempty" binding:"omitempty,oneof=PENDING IN_PROGRESS DONE ISSUE"`
	Note            string     `json:"note,omitempty"`
	Timestamp       *time.Time `json:"timestamp,omitempty"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes float64    `json:"durationMinutes"`
}

// UpdateWorkLogRequest edits a log. Logs are immutable in principle, so
// an edit produces a modified copy marked unsynced.
type UpdateWorkLogRequest struct {
	TableIDs        []string   `json:"tableIds,omitempty"`
	Size            *string    `json:"size,omitempty" binding:"omitempty,oneof=S M L"`
	Status          *string    `json:"status,omitempty" binding:"omitempty,oneof=PENDING IN_PROGRESS DONE ISSUE"`
	Note            *string    `json:"note,omitempty"`
	Timestamp       *time.Time `json:"timestamp,omitempty"`
	DurationMinutes *float64   `json:"durationMinutes,omitempty"`
}

// WorkLogResponse is a work log plus its computed string output
type WorkLogResponse struct {
	domain.WorkLog
	Strings float64 `json:"strings"`
}
