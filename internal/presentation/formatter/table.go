package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-attendance-monitor/internal/presentation/layout"
	"github.com/penwyp/go-attendance-monitor/internal/util"
)

const (
	barWidth     = 22
	maxNameWidth = 40
)

type TableFormatter struct {
	w       io.Writer
	sizer   layout.Sizer
	headers []string
	// color enables ANSI colouring of percentages, on for terminals.
	color bool
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	f := &TableFormatter{
		w: w,
		headers: []string{
			"Participant", "Role", "Conn.", "Attended", "Percentage", "Presence",
		},
	}
	f.color = f.sizer.IsTerminal(w)
	return f
}

// WithColor forces colouring on or off.
func (f *TableFormatter) WithColor(on bool) *TableFormatter {
	f.color = on
	return f
}

func (f *TableFormatter) Format(report *Report) error {
	rows := make([][]string, 0, len(report.Results))
	for _, r := range report.Results {
		rows = append(rows, []string{
			f.sizer.Truncate(r.Name, maxNameWidth),
			role(r),
			fmt.Sprintf("%d", r.Connections),
			util.FormatDuration(r.Attended),
			util.FormatPercentage(r.Percentage),
			util.CreateProgressBar(r.Percentage, barWidth),
		})
	}
	widths := f.calculateColumnWidths(rows)

	title := fmt.Sprintf("Session %s - %s (%s)",
		report.Window.Start.Format(time.DateTime),
		report.Window.End.Format("15:04:05"),
		util.FormatDuration(report.Window.Duration()))
	if f.color {
		title = util.FormatHeaderTitle(title)
	}
	fmt.Fprintln(f.w, title)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths, nil)
	f.printBorder(widths, "middle")
	for i, row := range rows {
		f.printRow(row, widths, &report.Results[i])
	}
	f.printBorder(widths, "bottom")

	if len(report.Students()) > 0 {
		fmt.Fprintf(f.w, "Average student attendance: %s\n", util.FormatPercentage(report.AveragePercentage()))
	}
	if len(report.Unmatched) > 0 {
		fmt.Fprintf(f.w, "Unmatched names (%d): %s\n", len(report.Unmatched), strings.Join(report.Unmatched, ", "))
	}
	return nil
}

// calculateColumnWidths sizes each column to its widest cell by display width
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = f.sizer.DisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := f.sizer.DisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	default:
		left, middle, right = "└", "┴", "┘"
	}

	var b strings.Builder
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	fmt.Fprintln(f.w, b.String())
}

// printRow prints a row; text columns are left-aligned, numbers right-aligned.
// result is nil for the header row.
func (f *TableFormatter) printRow(values []string, widths []int, result *ParticipantResult) {
	var b strings.Builder
	b.WriteString("│")
	for i, value := range values {
		leftAlign := i < 2 || i == 5
		cell := f.sizer.PadString(value, widths[i], leftAlign)
		if f.color && result != nil && i == 4 {
			cell = util.Colorize(cell, util.PercentageColor(result.Percentage))
		}
		b.WriteString(" " + cell + " │")
	}
	fmt.Fprintln(f.w, b.String())
}
