// Package analyzer runs the attendance pipeline for one session.
package analyzer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/penwyp/go-attendance-monitor/internal/config"
	"github.com/penwyp/go-attendance-monitor/internal/core/model"
	"github.com/penwyp/go-attendance-monitor/internal/core/reconcile"
	"github.com/penwyp/go-attendance-monitor/internal/core/session"
	"github.com/penwyp/go-attendance-monitor/internal/data/parser"
	"github.com/penwyp/go-attendance-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-attendance-monitor/internal/util"
)

type Analyzer struct {
	config *config.Config
	runID  string
	out    io.Writer
}

// New creates an analyzer writing its report to stdout.
func New(cfg *config.Config) *Analyzer {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates an analyzer writing its report to out.
func NewWithWriter(cfg *config.Config, out io.Writer) *Analyzer {
	return &Analyzer{
		config: cfg,
		runID:  uuid.NewString(),
		out:    out,
	}
}

// RunID identifies this analyzer's run in the logs.
func (a *Analyzer) RunID() string {
	return a.runID
}

// Run analyzes the session and writes the report.
func (a *Analyzer) Run() error {
	report, err := a.Analyze()
	if err != nil {
		return err
	}

	outputStart := time.Now()
	err = formatter.New(a.config.OutputFormat, a.out).Format(report)
	util.LogDebugf("Formatting and output duration: %v", time.Since(outputStart))
	return err
}

// Analyze computes the attendance report. It fails without producing any
// result when the session window cannot be established.
func (a *Analyzer) Analyze() (*formatter.Report, error) {
	startTime := time.Now()
	util.LogInfof("Starting attendance analysis run %s of %s", a.runID, a.config.AttendanceFile)

	tp := &util.TimeProvider{}
	if err := tp.SetTimezone(a.config.Timezone); err != nil {
		return nil, err
	}

	// Phase 1: Load roster
	loadStart := time.Now()
	roster, err := parser.LoadRoster(a.config.RosterFile)
	if err != nil {
		return nil, err
	}
	loadDuration := time.Since(loadStart)
	util.LogDebugf("Phase 1 - Roster load duration: %v, %d names", loadDuration, len(roster))

	// Phase 2: Parse attendance export
	parseStart := time.Now()
	p := parser.NewParser(parser.Options{
		SkipWaitingRoom: a.config.SkipWaitingRoom,
		TimeProvider:    tp,
	})
	rows, err := p.ParseFile(a.config.AttendanceFile)
	if err != nil {
		return nil, err
	}
	parseDuration := time.Since(parseStart)
	stats := p.Stats()
	util.LogDebugf("Phase 2 - Attendance parse duration: %v, %d rows kept of %d", parseDuration, stats.Kept, stats.Rows)
	if stats.Malformed > 0 {
		util.LogWarnf("Rejected %d attendance rows with leave time before join time", stats.Malformed)
	}

	// Phase 3: Reconcile rows with participants
	reconcileStart := time.Now()
	participants := model.NewParticipants(a.config.Teacher, roster)
	summary := reconcile.Reconcile(participants, rows)
	reconcileDuration := time.Since(reconcileStart)
	util.LogDebugf("Phase 3 - Reconcile duration: %v, matched %d rows, dropped %d", reconcileDuration, summary.Matched, summary.Dropped())
	if len(summary.Unmatched) > 0 {
		util.LogInfof("Unmatched display names: %v", summary.Unmatched)
	}

	// Phase 4: Resolve session window
	window, err := session.Resolve(participants)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session window: %w", err)
	}
	util.LogInfof("Session window %s - %s (%v)",
		tp.Format(window.Start, time.DateTime), tp.Format(window.End, time.DateTime), window.Duration())

	// Phase 5: Compute participation
	computeStart := time.Now()
	results, err := computeResults(participants, window)
	if err != nil {
		return nil, err
	}
	formatter.NewResultSorter(formatter.ParseSortField(a.config.SortBy)).Sort(results)
	computeDuration := time.Since(computeStart)
	util.LogDebugf("Phase 5 - Participation duration: %v", computeDuration)

	report := &formatter.Report{
		Teacher:   participants[0].Name,
		Window:    window,
		Results:   results,
		Unmatched: summary.Unmatched,
		Stats: formatter.RowStats{
			Total:       stats.Rows,
			Matched:     summary.Matched,
			Dropped:     summary.Dropped(),
			Malformed:   stats.Malformed,
			Unparsable:  stats.Unparsable,
			WaitingRoom: stats.WaitingRoom,
		},
	}

	util.LogDebugf("Total duration: %v (load:%v parse:%v reconcile:%v compute:%v)",
		time.Since(startTime), loadDuration, parseDuration, reconcileDuration, computeDuration)
	return report, nil
}

// computeResults calculates every participant's attendance. Any failure
// aborts the whole computation.
func computeResults(participants []*model.Participant, window model.SessionWindow) ([]formatter.ParticipantResult, error) {
	results := make([]formatter.ParticipantResult, 0, len(participants))
	for _, p := range participants {
		percentage, err := session.Percentage(p, window)
		if err != nil {
			return nil, fmt.Errorf("failed to compute participation of %s: %w", p.Name, err)
		}
		attended := session.Attended(p.Connections, window)
		results = append(results, formatter.ParticipantResult{
			Name:        p.Name,
			IsTeacher:   p.IsTeacher,
			Connections: len(p.Connections),
			Attended:    attended,
			Minutes:     attended.Minutes(),
			Percentage:  percentage,
		})
	}
	return results, nil
}
