package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// LateCancellationWindow: a student cancelling within this window of the
// session start forfeits the consumed quota unit.
const LateCancellationWindow = 12 * time.Hour

var (
	// ErrNotParticipant is surfaced exactly like a missing booking so that
	// unauthorized callers cannot probe for existence.
	ErrNotParticipant   = errors.New("actor is not a participant of the booking")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrPastSession      = errors.New("session has already started")
)

// Resolution is the outcome of a cancellation request: who cancelled and
// whether the quota unit goes back to the student.
type Resolution struct {
	ByInstructor bool
	Refund       bool
}

// ResolveCancellation validates actor and timing against the slot start and
// decides the refund. Instructor cancellations always refund; student
// cancellations refund only with more than LateCancellationWindow remaining.
func ResolveCancellation(b *Booking, actorID uuid.UUID, slotStart time.Time, now time.Time) (Resolution, error) {
	if !b.IsParticipant(actorID) {
		return Resolution{}, ErrNotParticipant
	}
	if b.Status() != StatusConfirmed {
		return Resolution{}, ErrAlreadyCancelled
	}
	if !slotStart.After(now) {
		return Resolution{}, ErrPastSession
	}

	byInstructor := actorID == b.InstructorID()
	refund := byInstructor || slotStart.Sub(now) > LateCancellationWindow

	return Resolution{
		ByInstructor: byInstructor,
		Refund:       refund,
	}, nil
}
