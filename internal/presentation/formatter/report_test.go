package formatter

import (
	"time"

	"github.com/penwyp/go-attendance-monitor/internal/core/model"
)

func at(hour, minute int) time.Time {
	return time.Date(2023, 3, 31, hour, minute, 0, 0, time.UTC)
}

func sampleReport() *Report {
	return &Report{
		Teacher: "Prof. Díaz",
		Window:  model.SessionWindow{Start: at(9, 55), End: at(10, 35)},
		Results: []ParticipantResult{
			{Name: "Prof. Díaz", IsTeacher: true, Connections: 1, Attended: 40 * time.Minute, Minutes: 40, Percentage: 100},
			{Name: "Ana Pérez", Connections: 1, Attended: 30 * time.Minute, Minutes: 30, Percentage: 75},
			{Name: "Luis Gómez"},
		},
		Unmatched: []string{"Unknown Guest"},
		Stats:     RowStats{Total: 3, Matched: 2, Dropped: 1},
	}
}
