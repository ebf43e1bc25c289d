package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid booking status")

// Booking links one student, one instructor and one slot. At most one
// booking may reference a slot (unique slot_id in storage backs this up).
type Booking struct {
	id              uuid.UUID
	studentID       uuid.UUID
	instructorID    uuid.UUID
	slotID          uuid.UUID
	status          Status
	isTrial         bool
	meetingLink     *string
	calendarEventID *string
	reminderSent    bool
	createdAt       time.Time
}

func NewBooking(
	studentID, instructorID, slotID uuid.UUID,
	isTrial bool,
	meetingLink, calendarEventID *string,
) *Booking {
	return &Booking{
		id:              uuid.New(),
		studentID:       studentID,
		instructorID:    instructorID,
		slotID:          slotID,
		status:          StatusConfirmed,
		isTrial:         isTrial,
		meetingLink:     meetingLink,
		calendarEventID: calendarEventID,
	}
}

func ReconstructBooking(
	id, studentID, instructorID, slotID uuid.UUID,
	status Status,
	isTrial bool,
	meetingLink, calendarEventID *string,
	reminderSent bool,
	createdAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:              id,
		studentID:       studentID,
		instructorID:    instructorID,
		slotID:          slotID,
		status:          status,
		isTrial:         isTrial,
		meetingLink:     meetingLink,
		calendarEventID: calendarEventID,
		reminderSent:    reminderSent,
		createdAt:       createdAt,
	}, nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) StudentID() uuid.UUID     { return b.studentID }
func (b *Booking) InstructorID() uuid.UUID  { return b.instructorID }
func (b *Booking) SlotID() uuid.UUID        { return b.slotID }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) IsTrial() bool            { return b.isTrial }
func (b *Booking) MeetingLink() *string     { return b.meetingLink }
func (b *Booking) CalendarEventID() *string { return b.calendarEventID }
func (b *Booking) ReminderSent() bool       { return b.reminderSent }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsParticipant(actorID uuid.UUID) bool {
	return actorID == b.studentID || actorID == b.instructorID
}
