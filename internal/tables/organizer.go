package tables

import (
	"sort"
	"strings"

	"field-track-api/internal/domain"
)

// FallbackSection is the bucket for labels that carry no section prefix
const FallbackSection = "General"

// Section is a named group of tables sharing a label prefix
type Section struct {
	Key    string         `json:"key"`
	Tables []domain.Table `json:"tables"`
}

// SortByOrder returns a new slice sorted ascending by OrderIndex.
// This is the canonical ordering used everywhere; tables are never
// re-sorted by label or id.
func SortByOrder(tables []domain.Table) []domain.Table {
	sorted := make([]domain.Table, len(tables))
	copy(sorted, tables)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	return sorted
}

// GroupBySection groups order-sorted tables by the first segment of their
// label, split on "-", "_", space or ".". Labels with fewer than two
// segments fall into the FallbackSection bucket. Sections appear in the
// order their first member appears, not alphabetically.
func GroupBySection(tables []domain.Table) []Section {
	sorted := SortByOrder(tables)

	sections := []Section{}
	index := map[string]int{}
	for _, t := range sorted {
		key := sectionKey(t.Label)
		i, ok := index[key]
		if !ok {
			i = len(sections)
			index[key] = i
			sections = append(sections, Section{Key: key, Tables: []domain.Table{}})
		}
		sections[i].Tables = append(sections[i].Tables, t)
	}
	return sections
}

func sectionKey(label string) string {
	parts := strings.FieldsFunc(label, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
	if len(parts) >= 2 {
		return parts[0]
	}
	return FallbackSection
}
