package dto

import (
	"github.com/google/uuid"

	"field-track-api/internal/economics"
)

// RestoreResult summarizes an applied backup import
type RestoreResult struct {
	Mode     string `json:"mode"`
	Projects int    `json:"projects"`
	Logs     int    `json:"logs"`
	Workers  int    `json:"workers"`
	// Warning carries non-fatal findings such as an app-name mismatch
	Warning string `json:"warning,omitempty"`
}

// ExportUploadResponse reports where an off-site backup was stored
type ExportUploadResponse struct {
	Key string `json:"key"`
}

// EarningsResponse is one worker's aggregate earnings
type EarningsResponse struct {
	WorkerID uuid.UUID `json:"workerId"`
	economics.Earnings
}
