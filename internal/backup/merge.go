// Package backup implements the export/import surface: the backup
// envelope, the id-keyed merge reconciler and the CSV log export.
package backup

// Entity is anything reconcilable by a stable string id
type Entity interface {
	EntityID() string
}

// ImportMode selects how a restored collection is applied
type ImportMode string

const (
	// ImportModeMerge reconciles by id; the incoming backup wins on conflict
	ImportModeMerge ImportMode = "merge"
	// ImportModeReplace discards the current collection wholesale
	ImportModeReplace ImportMode = "replace"
)

// Merge reconciles two id-keyed collections. Incoming entries overwrite
// current entries with the same id and otherwise append, so untouched
// current entries keep their relative order and genuinely new entries
// follow in incoming order. The inputs are not modified.
func Merge[T Entity](current, incoming []T) []T {
	position := make(map[string]int, len(current))
	merged := make([]T, len(current))
	for i, e := range current {
		position[e.EntityID()] = i
		merged[i] = e
	}
	for _, e := range incoming {
		if i, ok := position[e.EntityID()]; ok {
			merged[i] = e
			continue
		}
		position[e.EntityID()] = len(merged)
		merged = append(merged, e)
	}
	return merged
}
