// Package reconcile binds raw attendance rows to roster participants.
package reconcile

import (
	"github.com/penwyp/go-attendance-monitor/internal/core/matcher"
	"github.com/penwyp/go-attendance-monitor/internal/core/model"
	"github.com/penwyp/go-attendance-monitor/internal/util"
)

// Summary describes what a reconciliation pass did with the rows.
type Summary struct {
	Rows    int
	Matched int
	// Unmatched lists distinct display names that matched nobody, in first-seen order.
	Unmatched []string
}

// Dropped returns the number of rows that were not bound to a participant.
func (s Summary) Dropped() int {
	return s.Rows - s.Matched
}

// Reconcile appends each row's interval to the participant its display name
// matches. Rows are processed in order; rows matching nobody are dropped.
// The participants' connection lists are mutated in place.
func Reconcile(participants []*model.Participant, rows []model.AttendanceRow) Summary {
	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = p.Name
	}

	summary := Summary{Rows: len(rows)}
	seen := make(map[string]struct{})
	for _, row := range rows {
		result := matcher.Match(names, row.DisplayName)
		if !result.Matched {
			if _, ok := seen[row.DisplayName]; !ok {
				seen[row.DisplayName] = struct{}{}
				summary.Unmatched = append(summary.Unmatched, row.DisplayName)
			}
			if result.Closest >= 0 {
				util.LogDebugf("No match for %q (closest: %q, distance %s)",
					row.DisplayName, names[result.Closest], result.ClosestDistance)
			} else {
				util.LogDebugf("No match for %q", row.DisplayName)
			}
			continue
		}

		p := participants[result.Index]
		p.AddConnection(row.Interval())
		summary.Matched++
		util.LogDebugf("%s attended %v (as %q)", p.Name, row.Interval().Duration(), row.DisplayName)
	}
	return summary
}
