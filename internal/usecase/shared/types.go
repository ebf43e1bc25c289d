package shared

import (
	"time"

	"yogaflow/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side query types.
type SlotSnapshot struct {
	ID           uuid.UUID
	InstructorID uuid.UUID
	Start        time.Time
	End          time.Time
	Status       string
}

// BookingWithSlot carries the slot window alongside the booking so the
// cancellation resolver can decide timing without a second lookup.
type BookingWithSlot struct {
	Booking   *booking.Booking
	SlotStart time.Time
	SlotEnd   time.Time
}

type ReminderTarget struct {
	BookingID    uuid.UUID
	StudentID    uuid.UUID
	InstructorID uuid.UUID
	SlotStart    time.Time
	MeetingLink  *string
}
