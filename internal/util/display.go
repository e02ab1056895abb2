package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal colour sequences
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBold   = "\033[1m"
)

// GetDisplayWidth calculates the terminal display width of text
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// CreateProgressBar renders percentage (0-100) as a bar of width cells, brackets included
func CreateProgressBar(percentage float64, width int) string {
	barWidth := width - 2
	if barWidth < 1 {
		barWidth = 1
	}
	filled := int((percentage / 100) * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// PercentageColor picks a colour for an attendance percentage
func PercentageColor(percentage float64) string {
	switch {
	case percentage >= 80:
		return ColorGreen
	case percentage >= 50:
		return ColorYellow
	default:
		return ColorRed
	}
}

// Colorize wraps text in the given colour sequence
func Colorize(text, color string) string {
	return fmt.Sprintf("%s%s%s", color, text, ColorReset)
}

// FormatHeaderTitle formats report titles (Cyan + Bold)
func FormatHeaderTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, title, ColorReset)
}
