package performance

import (
	"math"
	"time"

	"field-track-api/internal/domain"
)

// minVelocity is the floor below which no completion estimate is made
const minVelocity = 0.1

// Forecast projects the completion of a project from recent velocity.
// EstimatedDaysLeft of -1 means the velocity is too low to estimate,
// which callers must distinguish from zero days left.
type Forecast struct {
	TablesRemaining         int        `json:"tablesRemaining"`
	EstimatedDaysLeft       int        `json:"estimatedDaysLeft"`
	EstimatedCompletionDate *time.Time `json:"estimatedCompletionDate"`
}

// ForecastCompletion estimates when a project finishes, based on the
// table throughput of the trailing seven days. A project without a
// TotalTables target yields the zero forecast with no date, so the
// caller can tell "no target" apart from "on track".
func ForecastCompletion(project *domain.Project, logs []domain.WorkLog, now time.Time) Forecast {
	if project == nil || project.TotalTables == nil {
		return Forecast{}
	}

	remaining := *project.TotalTables - project.CompletedTables
	if remaining <= 0 {
		return Forecast{EstimatedCompletionDate: &now}
	}

	windowStart := now.AddDate(0, 0, -7)
	recent := []domain.WorkLog{}
	for _, log := range logs {
		if log.Type != domain.WorkLogTypeTable {
			continue
		}
		if log.Timestamp.After(windowStart) && !log.Timestamp.After(now) {
			recent = append(recent, log)
		}
	}

	velocity := float64(NewSnapshot(recent, project.Settings).Tables) / 7
	if velocity <= minVelocity {
		return Forecast{TablesRemaining: remaining, EstimatedDaysLeft: -1}
	}

	daysLeft := int(math.Ceil(float64(remaining) / velocity))
	completion := now.AddDate(0, 0, daysLeft)
	return Forecast{
		TablesRemaining:         remaining,
		EstimatedDaysLeft:       daysLeft,
		EstimatedCompletionDate: &completion,
	}
}
