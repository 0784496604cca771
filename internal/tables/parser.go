// Package tables turns free-form text, numeric ranges and CSV imports into
// the structured, orderable table inventory of a project.
package tables

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"field-track-api/internal/domain"
)

// MaxRangeTables caps range generation so a reversed or huge range
// truncates instead of producing unbounded output.
const MaxRangeTables = 1000

// ParseResult is the outcome of a free-text parse
type ParseResult struct {
	Tables       []domain.Table
	DetectedMode domain.ProjectMode
}

// ParseRawInput parses a free-text table list, one table per line or
// comma-separated entry, in strict order of appearance. A trailing
// size token (L/M/S, also as "-L" or " L" endings, case-insensitive)
// assigns the table size; the label always keeps the full original text.
// Mode is STRICT when at least one entry carries a size.
func ParseRawInput(projectID uuid.UUID, text string) ParseResult {
	result := ParseResult{
		Tables:       []domain.Table{},
		DetectedMode: domain.ProjectModeFlexible,
	}

	entries := splitEntries(text)
	for i, entry := range entries {
		base, size := detectSizeSuffix(entry)
		if size != nil {
			result.DetectedMode = domain.ProjectModeStrict
		}
		result.Tables = append(result.Tables, domain.Table{
			ID:         buildTableID(base, i),
			ProjectID:  projectID,
			Label:      entry,
			OrderIndex: i,
			Size:       size,
			Status:     domain.TableStatusPending,
		})
	}
	return result
}

// GenerateRange generates labels prefix+zero-padded(n)+suffix for n from
// start to end inclusive. Descending ranges are supported; generation is
// capped at MaxRangeTables iterations. OrderIndex continues at offset so
// batches stay contiguous with previously generated tables.
func GenerateRange(projectID uuid.UUID, prefix string, start, end int, suffix string, size *domain.TableSize, offset int) []domain.Table {
	step := 1
	if end < start {
		step = -1
	}

	tables := []domain.Table{}
	pos := 0
	for n := start; ; n += step {
		if pos >= MaxRangeTables {
			break
		}
		label := fmt.Sprintf("%s%02d%s", prefix, n, suffix)
		orderIndex := offset + pos
		var sz *domain.TableSize
		if size != nil {
			v := *size
			sz = &v
		}
		tables = append(tables, domain.Table{
			ID:         buildTableID(label, orderIndex),
			ProjectID:  projectID,
			Label:      label,
			OrderIndex: orderIndex,
			Size:       sz,
			Status:     domain.TableStatusPending,
		})
		pos++
		if n == end {
			break
		}
	}
	return tables
}

// ParseCSVImport parses a table list in CSV form: one table per non-empty
// line, fields split on comma or semicolon, first field the label and an
// optional second field a size token (S/SMALL, M/MEDIUM, L/LARGE). A line
// whose first field is ID/id is treated as a header and skipped.
func ParseCSVImport(projectID uuid.UUID, input string) []domain.Table {
	tables := []domain.Table{}

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';'
		})
		if len(fields) == 0 {
			continue
		}
		label := strings.TrimSpace(fields[0])
		if label == "" || strings.EqualFold(label, "id") {
			continue
		}
		var size *domain.TableSize
		if len(fields) > 1 {
			size = ParseSizeToken(fields[1])
		}
		orderIndex := len(tables)
		tables = append(tables, domain.Table{
			ID:         buildTableID(label, orderIndex),
			ProjectID:  projectID,
			Label:      label,
			OrderIndex: orderIndex,
			Size:       size,
			Status:     domain.TableStatusPending,
		})
	}
	return tables
}

// Reindex shifts a freshly parsed batch by offset so it appends after an
// existing inventory, keeping ids unique across batches
func Reindex(batch []domain.Table, offset int) []domain.Table {
	shifted := make([]domain.Table, len(batch))
	for i, t := range batch {
		t.OrderIndex += offset
		base, _ := detectSizeSuffix(t.Label)
		t.ID = buildTableID(base, t.OrderIndex)
		shifted[i] = t
	}
	return shifted
}

// ParseSizeToken maps a size token to a TableSize. Unknown tokens map to
// nil rather than an error; an unrecognized size simply leaves the table
// without one.
func ParseSizeToken(token string) *domain.TableSize {
	var size domain.TableSize
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "S", "SMALL":
		size = domain.TableSizeS
	case "M", "MEDIUM":
		size = domain.TableSizeM
	case "L", "LARGE":
		size = domain.TableSizeL
	default:
		return nil
	}
	return &size
}

// splitEntries splits raw input on newlines and commas, trimming
// whitespace and dropping empty entries
func splitEntries(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	entries := make([]string, 0, len(raw))
	for _, e := range raw {
		e = strings.TrimSpace(e)
		if e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

// detectSizeSuffix finds a trailing size token and returns the entry with
// the token stripped plus the detected size. The stripped text feeds id
// generation only; the caller keeps the full entry as the label.
func detectSizeSuffix(entry string) (string, *domain.TableSize) {
	fields := strings.Fields(entry)
	if len(fields) >= 2 {
		if size := singleLetterSize(fields[len(fields)-1]); size != nil {
			return strings.Join(fields[:len(fields)-1], " "), size
		}
	}
	if len(entry) > 2 {
		sep := entry[len(entry)-2]
		if sep == '-' || sep == ' ' {
			if size := singleLetterSize(entry[len(entry)-1:]); size != nil {
				return strings.TrimSpace(strings.TrimRight(entry[:len(entry)-2], "- ")), size
			}
		}
	}
	return entry, nil
}

func singleLetterSize(token string) *domain.TableSize {
	if len(token) != 1 {
		return nil
	}
	return ParseSizeToken(token)
}

// buildTableID sanitizes a label into an id (alphanumeric and hyphens
// only) and appends the positional index, which keeps ids unique even
// for duplicate labels
func buildTableID(label string, index int) string {
	var b strings.Builder
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	sanitized := strings.Trim(b.String(), "-")
	if sanitized == "" {
		sanitized = "table"
	}
	return fmt.Sprintf("%s-%d", sanitized, index)
}
