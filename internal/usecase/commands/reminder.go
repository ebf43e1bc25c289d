package commands

import (
	"context"
	"log/slog"
	"time"

	"yogaflow/internal/pkg/clock"
	"yogaflow/internal/pkg/errs"
	"yogaflow/internal/usecase/shared"
)

// ReminderLookahead is how far ahead of the session start reminders fire.
const ReminderLookahead = 5 * time.Minute

type ReminderCommands interface {
	RunReminderSweep(ctx context.Context) error
}

type reminderUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
}

func NewReminderUseCase(uow shared.UnitOfWork, notifier Notifier, clock clock.Clock) ReminderCommands {
	return &reminderUseCaseImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clock,
	}
}

// RunReminderSweep claims every confirmed booking starting within the
// lookahead and dispatches reminders to both participants. Claiming flips
// reminder_sent in the same statement, so overlapping sweeps stay disjoint.
func (r *reminderUseCaseImpl) RunReminderSweep(ctx context.Context) error {
	now := r.clock.Now()

	var targets []*shared.ReminderTarget
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		targets, err = tx.Bookings().ClaimDueReminders(ctx, now, now.Add(ReminderLookahead))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, t := range targets {
		r.notifier.SessionReminder(ctx, t.BookingID, t.StudentID, t.SlotStart, t.MeetingLink)
		r.notifier.SessionReminder(ctx, t.BookingID, t.InstructorID, t.SlotStart, t.MeetingLink)
	}
	if len(targets) > 0 {
		slog.Info("reminder sweep dispatched", "count", len(targets))
	}
	return nil
}
