package model

import (
	"strings"
	"time"
)

// Interval is a single join-to-leave connection span.
type Interval struct {
	Join  time.Time `json:"join"`
	Leave time.Time `json:"leave"`
}

// Duration returns Leave - Join. It is negative for malformed intervals.
func (i Interval) Duration() time.Duration {
	return i.Leave.Sub(i.Join)
}

// Valid reports whether the interval does not end before it starts.
func (i Interval) Valid() bool {
	return !i.Leave.Before(i.Join)
}

// AttendanceRow is one raw connection event from a meeting export.
type AttendanceRow struct {
	DisplayName   string
	Email         string
	Join          time.Time
	Leave         time.Time
	Duration      time.Duration // as reported by the platform, informational only
	Guest         bool
	InWaitingRoom bool
}

// Interval returns the row's connection span.
func (r AttendanceRow) Interval() Interval {
	return Interval{Join: r.Join, Leave: r.Leave}
}

// Participant is an expected attendee of the session.
// Connections is appended to only by the reconciler and read-only afterwards.
type Participant struct {
	Name        string     `json:"name"`
	IsTeacher   bool       `json:"isTeacher"`
	Connections []Interval `json:"connections,omitempty"`
}

// AddConnection records a connection for the participant.
func (p *Participant) AddConnection(iv Interval) {
	p.Connections = append(p.Connections, iv)
}

// NewParticipants builds the participant list for a run. The teacher is
// prepended to the roster and is the only participant flagged as teacher.
// Duplicate and blank names are skipped so each roster entry yields exactly
// one participant.
func NewParticipants(teacher string, roster []string) []*Participant {
	names := make([]string, 0, len(roster)+1)
	names = append(names, teacher)
	names = append(names, roster...)

	seen := make(map[string]struct{}, len(names))
	participants := make([]*Participant, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		participants = append(participants, &Participant{
			Name:      name,
			IsTeacher: i == 0,
		})
	}
	return participants
}

// SessionWindow is the reference span attendance is measured against.
type SessionWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the length of the window.
func (w SessionWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether iv lies entirely within the window.
func (w SessionWindow) Contains(iv Interval) bool {
	return !iv.Join.Before(w.Start) && !iv.Leave.After(w.End) && iv.Valid()
}
