package domain

// WorkerRole represents the crew role of a worker
type WorkerRole string

const (
	WorkerRoleLeader   WorkerRole = "LEADER"
	WorkerRoleStringer WorkerRole = "STRINGER"
	WorkerRoleMonteur  WorkerRole = "MONTEUR"
	WorkerRoleHelper   WorkerRole = "HELPER"
)

// Worker represents a crew member. Rates are EUR-denominated; an absent
// rate means the worker is unpaid for that kind of work.
type Worker struct {
	BaseModel
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Role        WorkerRole `gorm:"type:varchar(20);not null" json:"role"`
	RateHourly  *float64   `json:"rateHourly,omitempty"`
	RateString  *float64   `json:"rateString,omitempty"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
	AvatarColor string     `gorm:"type:varchar(20)" json:"avatarColor,omitempty"`
}

// TableName specifies the table name for Worker
func (Worker) TableName() string {
	return "workers"
}

// EntityID returns the merge key used by backup reconciliation
func (w Worker) EntityID() string {
	return w.ID.String()
}

// HourlyRate returns the hourly rate, zero when unset
func (w *Worker) HourlyRate() float64 {
	if w.RateHourly == nil {
		return 0
	}
	return *w.RateHourly
}

// StringRate returns the piecework rate per string, zero when unset
func (w *Worker) StringRate() float64 {
	if w.RateString == nil {
		return 0
	}
	return *w.RateString
}
