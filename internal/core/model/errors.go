package model

import "errors"

var (
	// ErrNoTeacherFound is returned when no participant carries the teacher flag.
	ErrNoTeacherFound = errors.New("no teacher found among participants")

	// ErrNoSessionData is returned when the teacher has no connections, so the session window is undefined.
	ErrNoSessionData = errors.New("no session data: teacher has no connections")

	// ErrDegenerateWindow is returned when the session window has zero length.
	ErrDegenerateWindow = errors.New("degenerate session window: start equals end")

	// ErrMalformedInterval marks an attendance row whose leave time precedes its join time.
	ErrMalformedInterval = errors.New("malformed interval: leave before join")
)
