package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(report *Report) error {
	w := csv.NewWriter(f.w)

	headers := []string{
		"Name", "Role", "Connections", "Attended (Minutes)", "Percentage",
		"Session Start", "Session End",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	start := report.Window.Start.Format(time.DateTime)
	end := report.Window.End.Format(time.DateTime)
	for _, row := range report.Results {
		record := []string{
			row.Name,
			role(row),
			fmt.Sprintf("%d", row.Connections),
			fmt.Sprintf("%.2f", row.Minutes),
			fmt.Sprintf("%.2f", row.Percentage),
			start,
			end,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func role(r ParticipantResult) string {
	if r.IsTeacher {
		return "teacher"
	}
	return "student"
}
