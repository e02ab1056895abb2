// Package layout measures and pads text for terminal output.
package layout

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-attendance-monitor/internal/util"
	"golang.org/x/term"
)

const (
	defaultWidth = 100
	minWidth     = 60
)

// Sizer measures strings by display width rather than byte length, so
// accented and wide names line up in columns.
type Sizer struct{}

// DisplayWidth returns the number of terminal cells s occupies.
func (Sizer) DisplayWidth(s string) int {
	return util.GetDisplayWidth(s)
}

// PadString pads s with spaces to width cells.
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.DisplayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// Truncate shortens s to at most width cells, marking the cut with "…".
func (Sizer) Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// IsTerminal reports whether w is an interactive terminal.
func (Sizer) IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// GetMaxWidth returns the usable width of w, falling back to a default
// when w is not a terminal.
func (i Sizer) GetMaxWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	termWidth, _, err := term.GetSize(int(f.Fd()))
	if err != nil || termWidth < minWidth {
		return defaultWidth
	}
	return termWidth
}
