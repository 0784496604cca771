package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"field-track-api/internal/domain"
)

const (
	// FormatVersion is the current backup envelope version
	FormatVersion = 1
	// AppName identifies backups produced by this system
	AppName = "field-track"
)

// Meta describes a backup file
type Meta struct {
	Version    int    `json:"version"`
	Timestamp  int64  `json:"timestamp"`
	AppName    string `json:"appName"`
	ExportedBy string `json:"exportedBy"`
}

// Data carries the three entity collections of a backup
type Data struct {
	Projects []domain.Project `json:"projects"`
	Logs     []domain.WorkLog `json:"logs"`
	Workers  []domain.Worker  `json:"workers"`
}

// Envelope is the backup file format
type Envelope struct {
	Meta Meta `json:"meta"`
	Data Data `json:"data"`
}

// Encode serializes the collections into a versioned backup envelope
func Encode(data Data, exportedBy string, now time.Time) ([]byte, error) {
	envelope := Envelope{
		Meta: Meta{
			Version:    FormatVersion,
			Timestamp:  now.UnixMilli(),
			AppName:    AppName,
			ExportedBy: exportedBy,
		},
		Data: data,
	}
	return json.MarshalIndent(envelope, "", "  ")
}

// Decode parses a backup payload. A legacy payload without the meta/data
// wrapper is accepted by synthesizing version-0 metadata. Malformed JSON
// is a hard error; import must abort with no partial write.
func Decode(raw []byte) (*Envelope, error) {
	var probe struct {
		Meta *Meta `json:"meta"`
		Data *Data `json:"data"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("malformed backup payload: %w", err)
	}

	if probe.Data != nil {
		envelope := &Envelope{Data: *probe.Data}
		if probe.Meta != nil {
			envelope.Meta = *probe.Meta
		}
		return envelope, nil
	}

	// Legacy format: bare data payload at the top level
	var legacy Data
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("malformed backup payload: %w", err)
	}
	return &Envelope{
		Meta: Meta{Version: 0, AppName: AppName},
		Data: legacy,
	}, nil
}
