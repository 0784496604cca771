// Package performance folds work-log collections into derived metrics:
// snapshots, time-windowed per-worker breakdowns and completion forecasts.
// Everything here is pure and recomputed on every read; there is no
// incremental update path.
package performance

import (
	"time"

	"field-track-api/internal/domain"
	"field-track-api/internal/rules"
)

// Snapshot is the single computed aggregate consumed by all display
// surfaces. It is derived, never stored.
type Snapshot struct {
	Hours          float64 `json:"hours"`
	Strings        float64 `json:"strings"`
	Tables         int     `json:"tables"`
	StringsPerHour float64 `json:"stringsPerHour"`
	TablesPerDay   float64 `json:"tablesPerDay"`
	Kwp            float64 `json:"kwp"`
}

// NewSnapshot folds a log collection into a snapshot. Chat messages are
// skipped entirely. Distinct working days are counted by local calendar
// date, and tables per day divides by at least one day.
func NewSnapshot(logs []domain.WorkLog, settings *domain.ProjectSettings) Snapshot {
	var snap Snapshot
	days := map[string]struct{}{}

	for i := range logs {
		log := &logs[i]
		if log.IsMessage() {
			continue
		}
		snap.Hours += log.DurationMinutes / 60
		if log.Type == domain.WorkLogTypeTable {
			snap.Strings += rules.LogStrings(log, settings)
			snap.Tables += log.TableCount()
		}
		days[log.Timestamp.Local().Format("2006-01-02")] = struct{}{}
	}

	dayCount := len(days)
	if dayCount < 1 {
		dayCount = 1
	}
	snap.TablesPerDay = float64(snap.Tables) / float64(dayCount)
	if snap.Hours > 0 {
		snap.StringsPerHour = snap.Strings / snap.Hours
	}
	snap.Kwp = rules.StringsToKwp(snap.Strings, settings)
	return snap
}

// dayStart returns local midnight of t's calendar day
func dayStart(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns local midnight of the Monday of t's week
func weekStart(t time.Time) time.Time {
	start := dayStart(t)
	offset := (int(start.Weekday()) + 6) % 7
	return start.AddDate(0, 0, -offset)
}
