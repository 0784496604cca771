package backup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"field-track-api/internal/domain"
)

// csvHeader is the fixed column layout of the log export
const csvHeader = "Timestamp,Date,Time,Worker,Type,TableIDs,Size,Status,Duration(min),Note"

// ExportLogsCSV renders work logs as CSV, one row per log. Table ids are
// joined with ";" and the id list and note columns are always quoted.
// Commas and newlines inside notes are sanitized to spaces so a row never
// spans lines. Worker names fall back to the raw worker id.
func ExportLogsCSV(logs []domain.WorkLog, workers []domain.Worker) string {
	names := make(map[uuid.UUID]string, len(workers))
	for i := range workers {
		names[workers[i].ID] = workers[i].Name
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for i := range logs {
		log := &logs[i]

		worker, ok := names[log.WorkerID]
		if !ok {
			worker = log.WorkerID.String()
		}
		size := ""
		if log.Size != nil {
			size = string(*log.Size)
		}
		status := ""
		if log.Status != nil {
			status = string(*log.Status)
		}
		local := log.Timestamp.Local()

		fmt.Fprintf(&b, "%d,%s,%s,%s,%s,%q,%s,%s,%s,%q\n",
			log.Timestamp.UnixMilli(),
			local.Format("2006-01-02"),
			local.Format("15:04"),
			worker,
			log.Type,
			strings.Join(log.TableIDs, ";"),
			size,
			status,
			strconv.FormatFloat(log.DurationMinutes, 'f', -1, 64),
			sanitizeNote(log.Note),
		)
	}
	return b.String()
}

func sanitizeNote(note string) string {
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", ",", " ", `"`, "'")
	return replacer.Replace(note)
}
