package util

import (
	"fmt"
	"time"
)

// FormatDuration renders d as "1h 5m" or "40m", rounding down to the minute
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatPercentage renders p with two decimals and a percent sign
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
