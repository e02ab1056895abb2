package session

import (
	"fmt"

	"github.com/penwyp/go-attendance-monitor/internal/core/model"
)

// FindTeacher returns the first participant flagged as teacher.
func FindTeacher(participants []*model.Participant) (*model.Participant, error) {
	for _, p := range participants {
		if p.IsTeacher {
			return p, nil
		}
	}
	return nil, model.ErrNoTeacherFound
}

// ResolveWindow derives the session window from the teacher's presence:
// the earliest join to the latest leave over all of their connections.
func ResolveWindow(teacher *model.Participant) (model.SessionWindow, error) {
	if teacher == nil {
		return model.SessionWindow{}, model.ErrNoTeacherFound
	}
	if len(teacher.Connections) == 0 {
		return model.SessionWindow{}, fmt.Errorf("%s: %w", teacher.Name, model.ErrNoSessionData)
	}

	window := model.SessionWindow{
		Start: teacher.Connections[0].Join,
		End:   teacher.Connections[0].Leave,
	}
	for _, c := range teacher.Connections[1:] {
		if c.Join.Before(window.Start) {
			window.Start = c.Join
		}
		if c.Leave.After(window.End) {
			window.End = c.Leave
		}
	}
	return window, nil
}

// Resolve finds the teacher among participants and resolves the window.
func Resolve(participants []*model.Participant) (model.SessionWindow, error) {
	teacher, err := FindTeacher(participants)
	if err != nil {
		return model.SessionWindow{}, err
	}
	return ResolveWindow(teacher)
}
