package dispatch

import (
	"encoding/json"
	"time"

	"yogaflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirmed = "booking:confirmed"
	TypeBookingCancelled = "booking:cancelled"
	TypeSessionReminder  = "session:reminder"
	TypeReminderSweep    = "reminder:sweep"
)

type BookingConfirmedPayload struct {
	BookingID    uuid.UUID `json:"booking_id"`
	StudentID    uuid.UUID `json:"student_id"`
	InstructorID uuid.UUID `json:"instructor_id"`
	Start        time.Time `json:"start"`
	MeetingLink  *string   `json:"meeting_link,omitempty"`
}

type BookingCancelledPayload struct {
	BookingID    uuid.UUID `json:"booking_id"`
	RecipientID  uuid.UUID `json:"recipient_id"`
	Start        time.Time `json:"start"`
	ByInstructor bool      `json:"by_instructor"`
	Refunded     bool      `json:"refunded"`
}

type SessionReminderPayload struct {
	BookingID   uuid.UUID `json:"booking_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Start       time.Time `json:"start"`
	MeetingLink *string   `json:"meeting_link,omitempty"`
}

func NewBookingConfirmedTask(p BookingConfirmedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal booking confirmed payload")
	}
	return asynq.NewTask(TypeBookingConfirmed, b), nil
}

func NewBookingCancelledTask(p BookingCancelledPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal booking cancelled payload")
	}
	return asynq.NewTask(TypeBookingCancelled, b), nil
}

func NewSessionReminderTask(p SessionReminderPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal session reminder payload")
	}
	return asynq.NewTask(TypeSessionReminder, b), nil
}
