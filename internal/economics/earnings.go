// Package economics computes per-worker earnings from hourly and
// piecework rates. All amounts are EUR.
package economics

import (
	"field-track-api/internal/domain"
	"field-track-api/internal/rules"
)

// Currency is fixed for the whole system; there is no conversion
const Currency = "EUR"

// Earnings is a worker's aggregate pay over a log collection,
// bucketed by log type
type Earnings struct {
	Total          float64 `json:"total"`
	HourlyTotal    float64 `json:"hourlyTotal"`
	PieceworkTotal float64 `json:"pieceworkTotal"`
	Currency       string  `json:"currency"`
}

// LogEarnings returns what a single log pays the given worker. A log
// attributed to a different worker pays zero, even when misassigned.
// Table logs are priced with the owning project's settings; an unknown
// project falls back to the global defaults.
func LogEarnings(log *domain.WorkLog, worker *domain.Worker, projects []domain.Project) float64 {
	if log == nil || worker == nil || log.WorkerID != worker.ID {
		return 0
	}

	switch log.Type {
	case domain.WorkLogTypeHourly:
		return log.DurationMinutes / 60 * worker.HourlyRate()
	case domain.WorkLogTypeTable:
		var settings *domain.ProjectSettings
		for i := range projects {
			if projects[i].ID == log.ProjectID {
				settings = projects[i].Settings
				break
			}
		}
		return rules.LogStrings(log, settings) * worker.StringRate()
	default:
		return 0
	}
}

// CalculateEarnings sums LogEarnings over a log collection, bucketed
// into hourly and piecework totals
func CalculateEarnings(logs []domain.WorkLog, worker *domain.Worker, projects []domain.Project) Earnings {
	earnings := Earnings{Currency: Currency}
	for i := range logs {
		amount := LogEarnings(&logs[i], worker, projects)
		if amount == 0 {
			continue
		}
		switch logs[i].Type {
		case domain.WorkLogTypeHourly:
			earnings.HourlyTotal += amount
		case domain.WorkLogTypeTable:
			earnings.PieceworkTotal += amount
		}
		earnings.Total += amount
	}
	return earnings
}
