//go:build unit || e2e

package builder

import (
	"time"

	dombooking "yogaflow/internal/domain/booking"
	domslot "yogaflow/internal/domain/slot"
	"yogaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	StudentID    uuid.UUID
	InstructorID uuid.UUID
	SlotID       uuid.UUID
	Status       dombooking.Status
	IsTrial      bool
	MeetingLink  *string
	ReminderSent bool
	SlotStart    time.Time
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	link := "https://meet.example.com/abc-defg-hij"
	now := time.Now()
	return &BookingBuilder{
		ID:           uuid.New(),
		StudentID:    uuid.New(),
		InstructorID: uuid.New(),
		SlotID:       uuid.New(),
		Status:       dombooking.StatusConfirmed,
		IsTrial:      false,
		MeetingLink:  &link,
		SlotStart:    now.Add(48 * time.Hour),
		CreatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.ReconstructBooking(
		b.ID, b.StudentID, b.InstructorID, b.SlotID,
		b.Status,
		b.IsTrial,
		b.MeetingLink, nil,
		b.ReminderSent,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildWithSlot() (*shared.BookingWithSlot, error) {
	domain, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	return &shared.BookingWithSlot{
		Booking:   domain,
		SlotStart: b.SlotStart,
		SlotEnd:   b.SlotStart.Add(domslot.SessionDuration),
	}, nil
}
