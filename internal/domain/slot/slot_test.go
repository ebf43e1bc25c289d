//go:build unit

package slot_test

import (
	"testing"
	"time"

	"yogaflow/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	instructorID := uuid.New()

	tests := []struct {
		name  string
		start time.Time
		errIs error
	}{
		{
			name:  "future start is accepted",
			start: now.Add(time.Hour),
		},
		{
			name:  "start equal to now is rejected",
			start: now,
			errIs: slot.ErrPastStart,
		},
		{
			name:  "past start is rejected",
			start: now.Add(-time.Minute),
			errIs: slot.ErrPastStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := slot.NewSlot(instructorID, tt.start, now)

			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, instructorID, s.InstructorID())
			assert.Equal(t, slot.StatusAvailable, s.Status())
			assert.Equal(t, tt.start, s.Window().Start())
			assert.Equal(t, tt.start.Add(slot.SessionDuration), s.Window().End())
		})
	}
}

func TestWindow_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	w := slot.NewWindow(base)

	tests := []struct {
		name  string
		other slot.Window
		want  bool
	}{
		{
			name:  "identical windows overlap",
			other: slot.NewWindow(base),
			want:  true,
		},
		{
			name:  "partially overlapping window overlaps",
			other: slot.NewWindow(base.Add(30 * time.Minute)),
			want:  true,
		},
		{
			name:  "back-to-back following window does not overlap",
			other: slot.NewWindow(base.Add(slot.SessionDuration)),
			want:  false,
		},
		{
			name:  "back-to-back preceding window does not overlap",
			other: slot.NewWindow(base.Add(-slot.SessionDuration)),
			want:  false,
		},
		{
			name:  "distant window does not overlap",
			other: slot.NewWindow(base.Add(3 * time.Hour)),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(w))
		})
	}
}

func TestWindow_HasStarted(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	w := slot.NewWindow(start)

	assert.False(t, w.HasStarted(start.Add(-time.Second)))
	assert.True(t, w.HasStarted(start))
	assert.True(t, w.HasStarted(start.Add(time.Second)))
}

func TestReconstructWindow(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := slot.ReconstructWindow(start, start)
	assert.ErrorIs(t, err, slot.ErrInvalidWindow)

	w, err := slot.ReconstructWindow(start, start.Add(slot.SessionDuration))
	require.NoError(t, err)
	assert.Equal(t, slot.SessionDuration, w.Duration())
}

func TestReconstructSlot_InvalidStatus(t *testing.T) {
	w := slot.NewWindow(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := slot.ReconstructSlot(uuid.New(), uuid.New(), w, slot.Status("expired"), time.Now())
	assert.ErrorIs(t, err, slot.ErrInvalidStatus)
}
