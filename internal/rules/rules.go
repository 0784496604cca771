// Package rules converts table work into string counts and kWp capacity.
// All functions are pure; per-project settings override the global defaults.
package rules

import (
	"field-track-api/internal/domain"
)

// Global defaults applied when a project carries no settings
const (
	DefaultStrings      = 1.5
	DefaultKwpPerString = 19.6
)

// defaultStringsPerTable is the fixed per-size default map
var defaultStringsPerTable = map[domain.TableSize]float64{
	domain.TableSizeS: 1.0,
	domain.TableSizeM: 1.5,
	domain.TableSizeL: 2.0,
}

// StringsForSize returns the string count one table of the given size yields.
// A nil size (flexible-mode table, size unknown) uses the configured default.
func StringsForSize(size *domain.TableSize, settings *domain.ProjectSettings) float64 {
	if size == nil {
		if settings != nil && settings.Default != nil {
			return *settings.Default
		}
		return DefaultStrings
	}
	if settings != nil {
		if v, ok := settings.StringsPerTable[*size]; ok {
			return v
		}
		if settings.Default != nil {
			return *settings.Default
		}
	}
	if v, ok := defaultStringsPerTable[*size]; ok {
		return v
	}
	return DefaultStrings
}

// StringsToKwp converts a string count into kilowatt-peak capacity
func StringsToKwp(strings float64, settings *domain.ProjectSettings) float64 {
	factor := DefaultKwpPerString
	if settings != nil && settings.KwpPerString != nil {
		factor = *settings.KwpPerString
	}
	return strings * factor
}

// LogStrings returns the string output of a single work log.
// Hourly logs never produce strings.
func LogStrings(log *domain.WorkLog, settings *domain.ProjectSettings) float64 {
	if log == nil || log.Type != domain.WorkLogTypeTable {
		return 0
	}
	count := log.TableCount()
	if count == 0 {
		return 0
	}
	return float64(count) * StringsForSize(log.Size, settings)
}

// TotalStringsFromTables sums the string capacity of a table inventory,
// independent of any logged work. Used for project-level capacity estimates.
func TotalStringsFromTables(tables []domain.Table, settings *domain.ProjectSettings) float64 {
	var total float64
	for i := range tables {
		total += StringsForSize(tables[i].Size, settings)
	}
	return total
}
