package session

import (
	"testing"
	"time"

	"github.com/penwyp/go-attendance-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipAndMerge(t *testing.T) {
	window := model.SessionWindow{Start: at(10, 0), End: at(10, 30)}

	tests := []struct {
		name        string
		connections []model.Interval
		want        []model.Interval
	}{
		{
			name:        "empty",
			connections: nil,
			want:        nil,
		},
		{
			name:        "overlap merged",
			connections: []model.Interval{iv(10, 0, 10, 20), iv(10, 10, 10, 25)},
			want:        []model.Interval{iv(10, 0, 10, 20), iv(10, 20, 10, 25)},
		},
		{
			name:        "unsorted input sorted by join",
			connections: []model.Interval{iv(10, 15, 10, 25), iv(10, 0, 10, 5)},
			want:        []model.Interval{iv(10, 0, 10, 5), iv(10, 15, 10, 25)},
		},
		{
			name:        "contained interval dropped",
			connections: []model.Interval{iv(10, 0, 10, 20), iv(10, 5, 10, 10), iv(10, 15, 10, 25)},
			want:        []model.Interval{iv(10, 0, 10, 20), iv(10, 20, 10, 25)},
		},
		{
			name:        "adjacent intervals kept",
			connections: []model.Interval{iv(10, 0, 10, 10), iv(10, 10, 10, 20)},
			want:        []model.Interval{iv(10, 0, 10, 10), iv(10, 10, 10, 20)},
		},
		{
			name:        "clamped to window",
			connections: []model.Interval{iv(9, 0, 10, 10), iv(10, 20, 11, 0)},
			want:        []model.Interval{iv(10, 0, 10, 10), iv(10, 20, 10, 30)},
		},
		{
			name:        "entirely outside window dropped",
			connections: []model.Interval{iv(8, 0, 9, 0), iv(10, 5, 10, 10), iv(11, 0, 11, 30)},
			want:        []model.Interval{iv(10, 5, 10, 10)},
		},
		{
			name:        "reversed interval dropped",
			connections: []model.Interval{iv(10, 20, 10, 10)},
			want:        []model.Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipAndMerge(tt.connections, window)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
			for _, c := range got {
				assert.True(t, window.Contains(c), "%v outside window", c)
			}
		})
	}
}

func TestClipAndMerge_DoesNotMutateInput(t *testing.T) {
	window := model.SessionWindow{Start: at(9, 55), End: at(10, 35)}
	connections := []model.Interval{iv(10, 10, 10, 50), iv(9, 0, 10, 10)}
	original := append([]model.Interval(nil), connections...)

	ClipAndMerge(connections, window)

	assert.Equal(t, original, connections)
}

func TestClipAndMerge_Idempotent(t *testing.T) {
	window := model.SessionWindow{Start: at(10, 0), End: at(10, 30)}
	connections := []model.Interval{
		iv(9, 30, 10, 5), iv(10, 3, 10, 12), iv(10, 8, 10, 9), iv(10, 20, 10, 45),
	}

	once := ClipAndMerge(connections, window)
	twice := ClipAndMerge(once, window)

	assert.Equal(t, once, twice)
	assert.Equal(t, Attended(connections, window), Attended(once, window))
}

func TestAttended(t *testing.T) {
	window := model.SessionWindow{Start: at(9, 55), End: at(10, 35)}
	// 09:00-10:10 clamps to 09:55-10:10.
	assert.Equal(t, 15*time.Minute, Attended([]model.Interval{iv(9, 0, 10, 10)}, window))
	assert.Equal(t, time.Duration(0), Attended(nil, window))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name        string
		window      model.SessionWindow
		connections []model.Interval
		want        float64
		wantErr     error
	}{
		{
			name:        "three quarters",
			window:      model.SessionWindow{Start: at(9, 55), End: at(10, 35)},
			connections: []model.Interval{iv(10, 0, 10, 30)},
			want:        75,
		},
		{
			name:        "overlapping reconnects",
			window:      model.SessionWindow{Start: at(10, 0), End: at(10, 30)},
			connections: []model.Interval{iv(10, 0, 10, 20), iv(10, 10, 10, 25)},
			want:        25.0 / 30.0 * 100,
		},
		{
			name:        "full attendance",
			window:      model.SessionWindow{Start: at(9, 55), End: at(10, 35)},
			connections: []model.Interval{iv(9, 55, 10, 35)},
			want:        100,
		},
		{
			name:        "connected beyond the window caps at 100",
			window:      model.SessionWindow{Start: at(10, 0), End: at(10, 30)},
			connections: []model.Interval{iv(9, 0, 11, 0), iv(9, 30, 10, 45)},
			want:        100,
		},
		{
			name:   "no connections",
			window: model.SessionWindow{Start: at(10, 0), End: at(10, 30)},
			want:   0,
		},
		{
			name:        "degenerate window",
			window:      model.SessionWindow{Start: at(10, 0), End: at(10, 0)},
			connections: []model.Interval{iv(10, 0, 10, 0)},
			wantErr:     model.ErrDegenerateWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.Participant{Name: "Ana Pérez", Connections: tt.connections}
			got, err := Percentage(p, tt.window)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}
