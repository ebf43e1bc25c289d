package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPastStart     = errors.New("slot start time is in the past")
	ErrNotAvailable  = errors.New("slot is not available")
	ErrInvalidStatus = errors.New("invalid slot status")
)

// Slot is one bookable 45-minute window owned by exactly one instructor.
// It transitions available → booked only through the booking engine and
// booked → available only through the cancellation resolver.
type Slot struct {
	id           uuid.UUID
	instructorID uuid.UUID
	window       Window
	status       Status
	createdAt    time.Time
}

// NewSlot creates an available slot; the start time must be strictly in the
// future relative to now.
func NewSlot(instructorID uuid.UUID, start time.Time, now time.Time) (*Slot, error) {
	if !start.After(now) {
		return nil, ErrPastStart
	}

	return &Slot{
		id:           uuid.New(),
		instructorID: instructorID,
		window:       NewWindow(start),
		status:       StatusAvailable,
	}, nil
}

func ReconstructSlot(
	id, instructorID uuid.UUID,
	window Window,
	status Status,
	createdAt time.Time,
) (*Slot, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Slot{
		id:           id,
		instructorID: instructorID,
		window:       window,
		status:       status,
		createdAt:    createdAt,
	}, nil
}

func (s *Slot) ID() uuid.UUID           { return s.id }
func (s *Slot) InstructorID() uuid.UUID { return s.instructorID }
func (s *Slot) Window() Window          { return s.window }
func (s *Slot) Status() Status          { return s.status }
func (s *Slot) CreatedAt() time.Time    { return s.createdAt }

func (s *Slot) IsAvailable() bool {
	return s.status == StatusAvailable
}

func (s *Slot) IsOwnedBy(instructorID uuid.UUID) bool {
	return s.instructorID == instructorID
}
