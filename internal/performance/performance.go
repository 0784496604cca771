package performance

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"field-track-api/internal/domain"
)

// TimeRange selects the aggregation window relative to "now"
type TimeRange string

const (
	RangeDay  TimeRange = "DAY"
	RangeWeek TimeRange = "WEEK"
	RangeAll  TimeRange = "ALL"
)

// WorkerPerformance is one worker's snapshot within a window. WorkerName
// falls back to the raw worker id when the worker is unknown.
type WorkerPerformance struct {
	WorkerID   uuid.UUID `json:"workerId"`
	WorkerName string    `json:"workerName"`
	Snapshot
}

// ProjectPerformance is the windowed aggregate for a whole project plus
// the per-worker breakdown, sorted descending by strings.
type ProjectPerformance struct {
	Range TimeRange `json:"range"`
	Snapshot
	Workers []WorkerPerformance `json:"workers"`
	// CompletedPercent is filled in by the caller from project totals;
	// the aggregation itself has no project-table context.
	CompletedPercent float64 `json:"completedPercent"`
}

// Calculate filters logs to the requested window (local time, weeks start
// Monday), folds the global snapshot, then partitions by worker.
func Calculate(logs []domain.WorkLog, workers []domain.Worker, timeRange TimeRange, settings *domain.ProjectSettings, now time.Time) ProjectPerformance {
	filtered := filterByRange(logs, timeRange, now)

	perf := ProjectPerformance{
		Range:    timeRange,
		Snapshot: NewSnapshot(filtered, settings),
		Workers:  []WorkerPerformance{},
	}

	names := make(map[uuid.UUID]string, len(workers))
	for i := range workers {
		names[workers[i].ID] = workers[i].Name
	}

	// Partition preserving first-appearance order so equal-output workers
	// keep a stable position after the sort below.
	byWorker := map[uuid.UUID][]domain.WorkLog{}
	order := []uuid.UUID{}
	for _, log := range filtered {
		if _, ok := byWorker[log.WorkerID]; !ok {
			order = append(order, log.WorkerID)
		}
		byWorker[log.WorkerID] = append(byWorker[log.WorkerID], log)
	}

	for _, workerID := range order {
		name, ok := names[workerID]
		if !ok {
			name = workerID.String()
		}
		perf.Workers = append(perf.Workers, WorkerPerformance{
			WorkerID:   workerID,
			WorkerName: name,
			Snapshot:   NewSnapshot(byWorker[workerID], settings),
		})
	}
	sort.SliceStable(perf.Workers, func(i, j int) bool {
		return perf.Workers[i].Strings > perf.Workers[j].Strings
	})

	return perf
}

func filterByRange(logs []domain.WorkLog, timeRange TimeRange, now time.Time) []domain.WorkLog {
	var since time.Time
	switch timeRange {
	case RangeDay:
		since = dayStart(now)
	case RangeWeek:
		since = weekStart(now)
	default:
		return logs
	}

	filtered := []domain.WorkLog{}
	for _, log := range logs {
		if !log.Timestamp.Before(since) {
			filtered = append(filtered, log)
		}
	}
	return filtered
}
