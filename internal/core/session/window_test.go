package session

import (
	"errors"
	"testing"
	"time"

	"github.com/penwyp/go-attendance-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2023, 3, 31, hour, minute, 0, 0, time.UTC)
}

func iv(joinH, joinM, leaveH, leaveM int) model.Interval {
	return model.Interval{Join: at(joinH, joinM), Leave: at(leaveH, leaveM)}
}

func TestFindTeacher(t *testing.T) {
	participants := model.NewParticipants("Prof. Díaz", []string{"Ana Pérez"})

	teacher, err := FindTeacher(participants)
	require.NoError(t, err)
	assert.Equal(t, "Prof. Díaz", teacher.Name)

	_, err = FindTeacher(participants[1:])
	assert.True(t, errors.Is(err, model.ErrNoTeacherFound))

	_, err = FindTeacher(nil)
	assert.ErrorIs(t, err, model.ErrNoTeacherFound)
}

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name        string
		connections []model.Interval
		want        model.SessionWindow
		wantErr     error
	}{
		{
			name:        "single connection",
			connections: []model.Interval{iv(9, 55, 10, 35)},
			want:        model.SessionWindow{Start: at(9, 55), End: at(10, 35)},
		},
		{
			name:        "reconnects span earliest join to latest leave",
			connections: []model.Interval{iv(10, 5, 10, 20), iv(9, 50, 10, 0), iv(10, 25, 11, 0)},
			want:        model.SessionWindow{Start: at(9, 50), End: at(11, 0)},
		},
		{
			name:        "no connections",
			connections: nil,
			wantErr:     model.ErrNoSessionData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teacher := &model.Participant{Name: "Prof. Díaz", IsTeacher: true, Connections: tt.connections}
			window, err := ResolveWindow(teacher)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, window)
		})
	}
}

func TestResolveWindow_NilTeacher(t *testing.T) {
	_, err := ResolveWindow(nil)
	assert.ErrorIs(t, err, model.ErrNoTeacherFound)
}

func TestResolve(t *testing.T) {
	participants := model.NewParticipants("Prof. Díaz", []string{"Ana Pérez"})
	_, err := Resolve(participants)
	assert.ErrorIs(t, err, model.ErrNoSessionData)

	participants[0].AddConnection(iv(9, 55, 10, 35))
	window, err := Resolve(participants)
	require.NoError(t, err)
	assert.Equal(t, 40*time.Minute, window.Duration())
}
