package slot

import (
	"errors"
	"time"
)

// SessionDuration is fixed: every bookable slot is one 45-minute session.
const SessionDuration = 45 * time.Minute

var ErrInvalidWindow = errors.New("window start must be before end")

// Window is a half-open [start, end) time interval.
type Window struct {
	start time.Time
	end   time.Time
}

// NewWindow derives the full session window from its start time.
func NewWindow(start time.Time) Window {
	return Window{
		start: start,
		end:   start.Add(SessionDuration),
	}
}

func ReconstructWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps applies the half-open interval test: two windows collide when
// existing.start < new.end AND existing.end > new.start.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && w.end.After(other.start)
}

func (w Window) HasStarted(now time.Time) bool {
	return !w.start.After(now)
}
