package commands

import (
	"context"
	"errors"
	"time"

	"yogaflow/internal/domain/booking"
	"yogaflow/internal/domain/slot"
	"yogaflow/internal/infra"
	"yogaflow/internal/pkg/clock"
	"yogaflow/internal/pkg/errs"
	"yogaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	// ErrBookingNotFound also covers non-participants: outsiders cannot
	// distinguish a booking they may not touch from one that does not exist.
	ErrBookingNotFound  = errs.New("booking not found")
	ErrAlreadyCancelled = errs.New("booking is already cancelled")
	ErrPastSession      = errs.New("session has already started")
)

type CancellationResult struct {
	BookingID    uuid.UUID
	StudentID    uuid.UUID
	InstructorID uuid.UUID
	SlotStart    time.Time
	ByInstructor bool
	Refunded     bool
}

type CancellationCommands interface {
	Cancel(ctx context.Context, actorID, bookingID uuid.UUID) (*CancellationResult, error)
}

type cancellationUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
}

func NewCancellationUseCase(uow shared.UnitOfWork, notifier Notifier, clock clock.Clock) CancellationCommands {
	return &cancellationUseCaseImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clock,
	}
}

// Cancel releases the slot back to available and, when the policy says so,
// restores the consumed quota unit in the same transaction.
func (c *cancellationUseCaseImpl) Cancel(ctx context.Context, actorID, bookingID uuid.UUID) (*CancellationResult, error) {
	now := c.clock.Now()

	var result *CancellationResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bws, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		resolution, err := booking.ResolveCancellation(bws.Booking, actorID, bws.SlotStart, now)
		if err != nil {
			return mapResolutionError(err)
		}

		if err := tx.Bookings().UpdateStatus(ctx, bookingID, booking.StatusCancelled); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Slots().UpdateStatus(ctx, bws.Booking.SlotID(), slot.StatusAvailable); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if resolution.Refund {
			if err := c.restoreQuota(ctx, tx, bws.Booking); err != nil {
				return err
			}
		}

		result = &CancellationResult{
			BookingID:    bookingID,
			StudentID:    bws.Booking.StudentID(),
			InstructorID: bws.Booking.InstructorID(),
			SlotStart:    bws.SlotStart,
			ByInstructor: resolution.ByInstructor,
			Refunded:     resolution.Refund,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Both parties hear about the outcome exactly once: the student learns the
	// refund decision, the instructor learns the slot reopened (or gets the
	// confirmation of their own cancellation).
	c.notifier.BookingCancelled(ctx, result.BookingID, result.StudentID, result.SlotStart, result.ByInstructor, result.Refunded)
	c.notifier.BookingCancelled(ctx, result.BookingID, result.InstructorID, result.SlotStart, result.ByInstructor, false)

	return result, nil
}

// restoreQuota is a no-op for bookings made through the admin bypass, which
// never created a quota row.
func (c *cancellationUseCaseImpl) restoreQuota(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	studentQuota, err := tx.Quotas().FindByStudentForUpdate(ctx, b.StudentID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	studentQuota.Restore(b.IsTrial())
	if err := tx.Quotas().Save(ctx, studentQuota); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func mapResolutionError(err error) error {
	switch {
	case errors.Is(err, booking.ErrNotParticipant):
		return ErrBookingNotFound
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return ErrAlreadyCancelled
	case errors.Is(err, booking.ErrPastSession):
		return ErrPastSession
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
