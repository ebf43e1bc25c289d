package dispatch

import (
	"context"
	"log/slog"
	"time"

	"yogaflow/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// AsynqNotifier enqueues notification tasks. Enqueue failures are logged and
// swallowed: a booking must never fail because the queue is down.
type AsynqNotifier struct {
	client *asynq.Client
}

func NewAsynqNotifier(cfg config.RedisConfig) (*AsynqNotifier, func()) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close asynq client", "error", err.Error())
		}
	}
	return &AsynqNotifier{client: client}, cleanup
}

func (n *AsynqNotifier) BookingConfirmed(ctx context.Context, bookingID, studentID, instructorID uuid.UUID, start time.Time, meetingLink *string) {
	task, err := NewBookingConfirmedTask(BookingConfirmedPayload{
		BookingID:    bookingID,
		StudentID:    studentID,
		InstructorID: instructorID,
		Start:        start,
		MeetingLink:  meetingLink,
	})
	if err != nil {
		slog.Error("failed to build booking confirmed task", "booking_id", bookingID, "error", err.Error())
		return
	}
	n.enqueue(ctx, task, bookingID)
}

func (n *AsynqNotifier) BookingCancelled(ctx context.Context, bookingID, recipientID uuid.UUID, start time.Time, byInstructor, refunded bool) {
	task, err := NewBookingCancelledTask(BookingCancelledPayload{
		BookingID:    bookingID,
		RecipientID:  recipientID,
		Start:        start,
		ByInstructor: byInstructor,
		Refunded:     refunded,
	})
	if err != nil {
		slog.Error("failed to build booking cancelled task", "booking_id", bookingID, "error", err.Error())
		return
	}
	n.enqueue(ctx, task, bookingID)
}

func (n *AsynqNotifier) SessionReminder(ctx context.Context, bookingID, recipientID uuid.UUID, start time.Time, meetingLink *string) {
	task, err := NewSessionReminderTask(SessionReminderPayload{
		BookingID:   bookingID,
		RecipientID: recipientID,
		Start:       start,
		MeetingLink: meetingLink,
	})
	if err != nil {
		slog.Error("failed to build session reminder task", "booking_id", bookingID, "error", err.Error())
		return
	}
	n.enqueue(ctx, task, bookingID)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, task *asynq.Task, bookingID uuid.UUID) {
	if _, err := n.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		slog.Error("failed to enqueue notification task",
			"type", task.Type(),
			"booking_id", bookingID,
			"error", err.Error())
	}
}
