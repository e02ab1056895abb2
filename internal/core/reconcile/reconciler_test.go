package reconcile

import (
	"testing"
	"time"

	"github.com/penwyp/go-attendance-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2023, 3, 31, hour, minute, 0, 0, time.UTC)
}

func row(name string, join, leave time.Time) model.AttendanceRow {
	return model.AttendanceRow{DisplayName: name, Join: join, Leave: leave}
}

func TestReconcile(t *testing.T) {
	participants := model.NewParticipants("Prof. Díaz", []string{"Ana Pérez", "Luis Gómez"})
	rows := []model.AttendanceRow{
		row("ANA PEREZ", at(10, 0), at(10, 30)),
		row("Prof Diaz", at(9, 55), at(10, 35)),
		row("Unknown Guest", at(10, 0), at(10, 35)),
		row("ana", at(10, 31), at(10, 34)),
		row("Unknown Guest", at(10, 5), at(10, 6)),
	}

	summary := Reconcile(participants, rows)

	assert.Equal(t, 5, summary.Rows)
	assert.Equal(t, 3, summary.Matched)
	assert.Equal(t, 2, summary.Dropped())
	assert.Equal(t, []string{"Unknown Guest"}, summary.Unmatched)

	teacher, ana, luis := participants[0], participants[1], participants[2]
	require.Len(t, teacher.Connections, 1)
	assert.Equal(t, model.Interval{Join: at(9, 55), Leave: at(10, 35)}, teacher.Connections[0])

	require.Len(t, ana.Connections, 2)
	assert.Equal(t, at(10, 0), ana.Connections[0].Join, "row order is preserved")
	assert.Equal(t, at(10, 31), ana.Connections[1].Join)

	assert.Empty(t, luis.Connections)
}

func TestReconcile_UnknownGuestContributesNothing(t *testing.T) {
	participants := model.NewParticipants("Prof. Díaz", []string{"Ana Pérez", "Luis Gómez"})
	summary := Reconcile(participants, []model.AttendanceRow{
		row("Unknown Guest", at(10, 0), at(10, 30)),
	})

	assert.Equal(t, 0, summary.Matched)
	for _, p := range participants {
		assert.Empty(t, p.Connections, p.Name)
	}
}

func TestReconcile_NoRows(t *testing.T) {
	participants := model.NewParticipants("Prof. Díaz", []string{"Ana Pérez"})
	summary := Reconcile(participants, nil)

	assert.Equal(t, 0, summary.Rows)
	assert.Empty(t, summary.Unmatched)
}

func TestReconcile_NoParticipants(t *testing.T) {
	summary := Reconcile(nil, []model.AttendanceRow{row("Ana", at(10, 0), at(10, 30))})
	assert.Equal(t, 1, summary.Dropped())
	assert.Equal(t, []string{"Ana"}, summary.Unmatched)
}
