package formatter

import (
	"sort"

	"github.com/penwyp/go-attendance-monitor/internal/core/normalize"
)

// SortField represents the field to sort results by
type SortField int

const (
	SortByRoster SortField = iota
	SortByName
	SortByPercentage
)

// ParseSortField maps a configuration value to a SortField, defaulting to roster order.
func ParseSortField(s string) SortField {
	switch s {
	case "name":
		return SortByName
	case "percentage":
		return SortByPercentage
	default:
		return SortByRoster
	}
}

// ResultSorter orders participant results. The teacher always comes first;
// roster order is kept among equal keys.
type ResultSorter struct {
	field SortField
}

// NewResultSorter creates a sorter for field
func NewResultSorter(field SortField) *ResultSorter {
	return &ResultSorter{field: field}
}

// Sort sorts results in place
func (s *ResultSorter) Sort(results []ParticipantResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].IsTeacher != results[j].IsTeacher {
			return results[i].IsTeacher
		}

		switch s.field {
		case SortByName:
			return normalize.Normalize(results[i].Name) < normalize.Normalize(results[j].Name)
		case SortByPercentage:
			return results[i].Percentage > results[j].Percentage
		default:
			return false
		}
	})
}
