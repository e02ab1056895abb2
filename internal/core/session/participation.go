package session

import (
	"sort"
	"time"

	"github.com/penwyp/go-attendance-monitor/internal/core/model"
)

// ClipAndMerge clamps connections to the window and removes double-counted
// overlap. The result is sorted by join time, every interval lies inside the
// window, and no two intervals overlap. The input is not modified.
func ClipAndMerge(connections []model.Interval, window model.SessionWindow) []model.Interval {
	if len(connections) == 0 {
		return nil
	}

	sorted := make([]model.Interval, len(connections))
	copy(sorted, connections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Join.Before(sorted[j].Join)
	})

	kept := make([]model.Interval, 0, len(sorted))
	for _, c := range sorted {
		c = clamp(c, window)
		if len(kept) > 0 {
			prevLeave := kept[len(kept)-1].Leave
			if c.Join.Before(prevLeave) {
				c.Join = prevLeave
			}
		}
		// Intervals outside the window, fully covered by an earlier one, or
		// malformed at the source end up reversed here.
		if c.Join.After(c.Leave) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func clamp(c model.Interval, window model.SessionWindow) model.Interval {
	if c.Join.Before(window.Start) {
		c.Join = window.Start
	}
	if c.Leave.After(window.End) {
		c.Leave = window.End
	}
	return c
}

// Attended returns the total time covered by connections inside the window.
func Attended(connections []model.Interval, window model.SessionWindow) time.Duration {
	var total time.Duration
	for _, c := range ClipAndMerge(connections, window) {
		total += c.Duration()
	}
	return total
}

// Percentage returns the share of the session window, 0 to 100, that the
// participant was connected for.
func Percentage(p *model.Participant, window model.SessionWindow) (float64, error) {
	if len(p.Connections) == 0 {
		return 0, nil
	}
	span := window.Duration()
	if span <= 0 {
		return 0, model.ErrDegenerateWindow
	}
	attended := Attended(p.Connections, window)
	return float64(attended) / float64(span) * 100, nil
}
