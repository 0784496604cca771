package dto

import (
	"time"

	"github.com/google/uuid"

	"field-track-api/internal/domain"
)

// CreateWorkerRequest registers a crew member. Rates are EUR; absent
// rates mean unpaid.
type CreateWorkerRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Role        string   `json:"role" binding:"required,oneof=LEADER STRINGER MONTEUR HELPER"`
	RateHourly  *float64 `json:"rateHourly,omitempty" binding:"omitempty,gte=0"`
	RateString  *float64 `json:"rateString,omitempty" binding:"omitempty,gte=0"`
	AvatarColor string   `json:"avatarColor,omitempty"`
}

// UpdateWorkerRequest changes worker fields; all optional
type UpdateWorkerRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Role        *string  `json:"role,omitempty" binding:"omitempty,oneof=LEADER STRINGER MONTEUR HELPER"`
	RateHourly  *float64 `json:"rateHourly,omitempty" binding:"omitempty,gte=0"`
	RateString  *float64 `json:"rateString,omitempty" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"isActive,omitempty"`
	AvatarColor *string  `json:"avatarColor,omitempty"`
}

// WorkerResponse is the worker representation returned by the API
type WorkerResponse struct {
	ID          uuid.UUID         `json:"workerId"`
	Name        string            `json:"name"`
	Role        domain.WorkerRole `json:"role"`
	RateHourly  *float64          `json:"rateHourly,omitempty"`
	RateString  *float64          `json:"rateString,omitempty"`
	IsActive    bool              `json:"isActive"`
	AvatarColor string            `json:"avatarColor,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}
