package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-attendance-monitor/internal/util"
)

// SummaryFormatter writes a plain-text overview of the session.
type SummaryFormatter struct {
	w io.Writer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

// Format writes the summary of report.
func (f *SummaryFormatter) Format(report *Report) error {
	students := report.Students()

	var attended, full, absent int
	for _, s := range students {
		switch {
		case s.Connections == 0 || s.Attended == 0:
			absent++
		case s.Percentage >= 100:
			full++
			attended++
		default:
			attended++
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Attendance Summary Report\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "Teacher:        %s\n", report.Teacher)
	fmt.Fprintf(&b, "Session:        %s - %s\n",
		report.Window.Start.Format(time.DateTime), report.Window.End.Format(time.DateTime))
	fmt.Fprintf(&b, "Duration:       %s\n\n", util.FormatDuration(report.Window.Duration()))

	fmt.Fprintf(&b, "Students:       %d\n", len(students))
	fmt.Fprintf(&b, "Attended:       %d (%d for the full session)\n", attended, full)
	fmt.Fprintf(&b, "Absent:         %d\n", absent)
	fmt.Fprintf(&b, "Average:        %s\n\n", util.FormatPercentage(report.AveragePercentage()))

	b.WriteString("Attendance Rows\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	fmt.Fprintf(&b, "Total:          %d\n", report.Stats.Total)
	fmt.Fprintf(&b, "Matched:        %d\n", report.Stats.Matched)
	fmt.Fprintf(&b, "Unmatched:      %d\n", report.Stats.Dropped)
	if report.Stats.Malformed > 0 || report.Stats.Unparsable > 0 {
		fmt.Fprintf(&b, "Rejected:       %d malformed, %d unparsable\n", report.Stats.Malformed, report.Stats.Unparsable)
	}
	if report.Stats.WaitingRoom > 0 {
		fmt.Fprintf(&b, "Waiting room:   %d\n", report.Stats.WaitingRoom)
	}

	if len(report.Unmatched) > 0 {
		b.WriteString("\nUnmatched Names\n")
		b.WriteString(strings.Repeat("-", 60) + "\n")
		for _, name := range report.Unmatched {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}
