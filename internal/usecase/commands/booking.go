package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"yogaflow/internal/domain/booking"
	"yogaflow/internal/domain/quota"
	"yogaflow/internal/domain/slot"
	"yogaflow/internal/domain/user"
	"yogaflow/internal/infra"
	"yogaflow/internal/pkg/clock"
	"yogaflow/internal/pkg/errs"
	"yogaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound            = errs.New("slot not found")
	ErrSlotNotAvailable        = errs.New("slot is not available")
	ErrStudentDoubleBooking    = errs.New("student already has a session in this window")
	ErrQuotaExceeded           = errs.New("booking not allowed by subscription quota")
	ErrPaymentMethodRequired   = errs.New("payment method required for trial booking")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingResult struct {
	BookingID    uuid.UUID
	SlotID       uuid.UUID
	InstructorID uuid.UUID
	Start        time.Time
	End          time.Time
	IsTrial      bool
	MeetingLink  *string
}

type BookingCommands interface {
	Book(ctx context.Context, studentID uuid.UUID, role user.Role, instructorID, slotID uuid.UUID) (*BookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	meetings MeetingProvisioner
	notifier Notifier
	clock    clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	meetings MeetingProvisioner,
	notifier Notifier,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		meetings: meetings,
		notifier: notifier,
		clock:    clock,
	}
}

// Book claims one slot for one student. The slot row lock taken inside the
// transaction totally orders concurrent attempts; every check that matters is
// repeated against locked state.
func (b *bookingUseCaseImpl) Book(ctx context.Context, studentID uuid.UUID, role user.Role, instructorID, slotID uuid.UUID) (*BookingResult, error) {
	now := b.clock.Now()

	snap, err := b.preflight(ctx, studentID, role, instructorID, slotID, now)
	if err != nil {
		return nil, err
	}

	// Provisioning happens before the transaction so a slow external call
	// never holds the slot lock. Failure is non-fatal: the session simply
	// has no link.
	meeting := b.provisionMeeting(ctx, studentID, snap)

	var result *BookingResult
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lockedSlot, err := tx.Slots().FindByIDForUpdate(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// A stale instructor reference means the caller is booking a slot
		// that is no longer what they saw; treated the same as a taken slot.
		if !lockedSlot.IsAvailable() || !lockedSlot.IsOwnedBy(instructorID) || lockedSlot.Window().HasStarted(now) {
			return ErrSlotNotAvailable
		}

		overlaps, err := tx.Bookings().HasConfirmedOverlap(ctx, studentID, lockedSlot.Window())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlaps {
			return ErrStudentDoubleBooking
		}

		entitlement, studentQuota, err := b.checkEligibility(ctx, tx, studentID, role)
		if err != nil {
			return err
		}

		if err := tx.Slots().UpdateStatus(ctx, slotID, slot.StatusBooked); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		var meetingLink, calendarEventID *string
		if meeting != nil {
			meetingLink = &meeting.JoinURL
			calendarEventID = &meeting.CalendarEventID
		}
		newBooking := booking.NewBooking(
			studentID, lockedSlot.InstructorID(), slotID,
			entitlement.IsTrial, meetingLink, calendarEventID,
		)
		if err := tx.Bookings().Create(ctx, newBooking); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrSlotNotAvailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !entitlement.Bypass {
			studentQuota.Consume(entitlement.IsTrial)
			if err := tx.Quotas().Save(ctx, studentQuota); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		result = &BookingResult{
			BookingID:    newBooking.ID(),
			SlotID:       slotID,
			InstructorID: lockedSlot.InstructorID(),
			Start:        lockedSlot.Window().Start(),
			End:          lockedSlot.Window().End(),
			IsTrial:      entitlement.IsTrial,
			MeetingLink:  meetingLink,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.notifier.BookingConfirmed(ctx, result.BookingID, studentID, result.InstructorID, result.Start, result.MeetingLink)

	return result, nil
}

// preflight rejects obviously doomed requests before any external call or
// lock. Advisory only; the transaction re-checks everything.
func (b *bookingUseCaseImpl) preflight(ctx context.Context, studentID uuid.UUID, role user.Role, instructorID, slotID uuid.UUID, now time.Time) (*shared.SlotSnapshot, error) {
	snap, err := b.uow.Reads().SlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.Status != slot.StatusAvailable.String() || snap.InstructorID != instructorID || !snap.Start.After(now) {
		return nil, ErrSlotNotAvailable
	}

	if role == user.RoleAdmin {
		return snap, nil
	}

	studentQuota, err := b.uow.Reads().QuotaByStudent(ctx, studentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// First booking attempt: evaluate against the onboarding state.
			studentQuota = quota.NewTrialQuota(studentID)
		} else {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	if _, err := studentQuota.CheckEligibility(); err != nil {
		return nil, markEligibilityError(err)
	}
	return snap, nil
}

// checkEligibility re-evaluates against the locked quota row. Admins bypass
// the ledger entirely; missing rows are provisioned as trial quotas.
func (b *bookingUseCaseImpl) checkEligibility(ctx context.Context, tx shared.Tx, studentID uuid.UUID, role user.Role) (quota.Entitlement, *quota.Quota, error) {
	if role == user.RoleAdmin {
		return quota.Entitlement{Bypass: true}, nil, nil
	}

	studentQuota, err := tx.Quotas().FindByStudentForUpdate(ctx, studentID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return quota.Entitlement{}, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Quotas().Create(ctx, quota.NewTrialQuota(studentID)); err != nil {
			return quota.Entitlement{}, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		studentQuota, err = tx.Quotas().FindByStudentForUpdate(ctx, studentID)
		if err != nil {
			return quota.Entitlement{}, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	entitlement, err := studentQuota.CheckEligibility()
	if err != nil {
		return quota.Entitlement{}, nil, markEligibilityError(err)
	}
	return entitlement, studentQuota, nil
}

func (b *bookingUseCaseImpl) provisionMeeting(ctx context.Context, studentID uuid.UUID, snap *shared.SlotSnapshot) *MeetingInfo {
	meeting, err := b.meetings.Provision(ctx, SessionDetails{
		StudentID:    studentID,
		InstructorID: snap.InstructorID,
		Start:        snap.Start,
		End:          snap.End,
	})
	if err != nil {
		slog.Warn("meeting provisioning failed, booking proceeds without link",
			"slot_id", snap.ID,
			"error", err.Error())
		return nil
	}
	return meeting
}

func markEligibilityError(err error) error {
	if errors.Is(err, quota.ErrPaymentMethodRequired) {
		return errs.Mark(err, ErrPaymentMethodRequired)
	}
	return errs.Mark(err, ErrQuotaExceeded)
}
