package formatter

import (
	"io"
	"time"

	"github.com/penwyp/go-attendance-monitor/internal/core/model"
)

// Report is the outcome of one attendance run.
type Report struct {
	Teacher   string              `json:"teacher"`
	Window    model.SessionWindow `json:"window"`
	Results   []ParticipantResult `json:"results"`
	Unmatched []string            `json:"unmatched,omitempty"`
	Stats     RowStats            `json:"stats"`
}

// ParticipantResult is the attendance of one participant.
type ParticipantResult struct {
	Name        string        `json:"name"`
	IsTeacher   bool          `json:"isTeacher"`
	Connections int           `json:"connections"`
	Attended    time.Duration `json:"-"`
	Minutes     float64       `json:"attendedMinutes"`
	Percentage  float64       `json:"percentage"`
}

// RowStats counts attendance rows through ingestion and reconciliation.
type RowStats struct {
	Total       int `json:"total"`
	Matched     int `json:"matched"`
	Dropped     int `json:"dropped"`
	Malformed   int `json:"malformed"`
	Unparsable  int `json:"unparsable"`
	WaitingRoom int `json:"waitingRoom"`
}

// Students returns the results of everyone but the teacher.
func (r *Report) Students() []ParticipantResult {
	students := make([]ParticipantResult, 0, len(r.Results))
	for _, res := range r.Results {
		if !res.IsTeacher {
			students = append(students, res)
		}
	}
	return students
}

// AveragePercentage is the mean student percentage, 0 without students.
func (r *Report) AveragePercentage() float64 {
	students := r.Students()
	if len(students) == 0 {
		return 0
	}
	var sum float64
	for _, s := range students {
		sum += s.Percentage
	}
	return sum / float64(len(students))
}

// Formatter writes a report.
type Formatter interface {
	Format(report *Report) error
}

// New returns the formatter for format writing to w; unknown formats get the table.
func New(format string, w io.Writer) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter(w)
	case "csv":
		return NewCSVFormatter(w)
	case "summary":
		return NewSummaryFormatter(w)
	default:
		return NewTableFormatter(w)
	}
}
