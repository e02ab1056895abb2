package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/penwyp/go-attendance-monitor/internal/presentation/layout"
	"github.com/penwyp/go-attendance-monitor/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatterFormat(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	assert.False(t, f.color, "buffers are not terminals")
	require.NoError(t, f.Format(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Session 2023-03-31 09:55:00 - 10:35:00 (40m)")
	assert.Contains(t, out, "Prof. Díaz")
	assert.Contains(t, out, "75.00%")
	assert.Contains(t, out, "30m")
	assert.Contains(t, out, "Average student attendance: 37.50%")
	assert.Contains(t, out, "Unmatched names (1): Unknown Guest")
	assert.NotContains(t, out, util.ColorReset)
}

func TestTableFormatterFormat_AlignedByDisplayWidth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(sampleReport()))

	sizer := layout.Sizer{}
	var tableLines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "│") || strings.HasPrefix(line, "┌") || strings.HasPrefix(line, "├") || strings.HasPrefix(line, "└") {
			tableLines = append(tableLines, line)
		}
	}
	require.Len(t, tableLines, 7) // 3 borders, header, 3 rows

	width := sizer.DisplayWidth(tableLines[0])
	for _, line := range tableLines {
		assert.Equal(t, width, sizer.DisplayWidth(line), line)
	}
}

func TestTableFormatterFormat_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).WithColor(true).Format(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, util.ColorGreen)
	assert.Contains(t, out, util.ColorYellow)
	assert.Contains(t, out, util.ColorRed)
	assert.Contains(t, out, util.FormatHeaderTitle("Session 2023-03-31 09:55:00 - 10:35:00 (40m)"))
}

func TestTableFormatterFormat_NoStudents(t *testing.T) {
	report := sampleReport()
	report.Results = report.Results[:1]
	report.Unmatched = nil

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(report))
	assert.NotContains(t, buf.String(), "Average student attendance")
	assert.NotContains(t, buf.String(), "Unmatched names")
}
