package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(results []ParticipantResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestResultSorter(t *testing.T) {
	base := []ParticipantResult{
		{Name: "Prof. Díaz", IsTeacher: true, Percentage: 100},
		{Name: "Luis Gómez", Percentage: 40},
		{Name: "Álvaro Ruiz", Percentage: 90},
		{Name: "Ana Pérez", Percentage: 40},
	}

	tests := []struct {
		field    string
		expected []string
	}{
		{field: "roster", expected: []string{"Prof. Díaz", "Luis Gómez", "Álvaro Ruiz", "Ana Pérez"}},
		{field: "name", expected: []string{"Prof. Díaz", "Álvaro Ruiz", "Ana Pérez", "Luis Gómez"}},
		{field: "percentage", expected: []string{"Prof. Díaz", "Álvaro Ruiz", "Luis Gómez", "Ana Pérez"}},
		{field: "", expected: []string{"Prof. Díaz", "Luis Gómez", "Álvaro Ruiz", "Ana Pérez"}},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			results := append([]ParticipantResult(nil), base...)
			NewResultSorter(ParseSortField(tt.field)).Sort(results)
			assert.Equal(t, tt.expected, names(results))
		})
	}
}

func TestResultSorter_TeacherFirst(t *testing.T) {
	results := []ParticipantResult{
		{Name: "Ana Pérez", Percentage: 100},
		{Name: "Zed Teacher", IsTeacher: true, Percentage: 10},
	}
	NewResultSorter(SortByName).Sort(results)
	assert.Equal(t, "Zed Teacher", results[0].Name)
}
