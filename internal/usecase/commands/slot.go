package commands

import (
	"context"
	"time"

	"yogaflow/internal/domain/slot"
	"yogaflow/internal/infra"
	"yogaflow/internal/pkg/clock"
	"yogaflow/internal/pkg/errs"
	"yogaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPastSlot    = errs.New("slot start time is in the past")
	ErrSlotOverlap = errs.New("slot overlaps an existing slot")
)

type SlotResult struct {
	SlotID uuid.UUID
	Start  time.Time
	End    time.Time
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, instructorID uuid.UUID, start time.Time) (*SlotResult, error)
	// DeleteSlot is idempotent: deleting a missing or already-booked slot
	// reports deleted=false without error.
	DeleteSlot(ctx context.Context, instructorID, slotID uuid.UUID) (bool, error)
}

type slotUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSlotUseCase(uow shared.UnitOfWork, clock clock.Clock) SlotCommands {
	return &slotUseCaseImpl{uow: uow, clock: clock}
}

// CreateSlot opens one 45-minute window. The overlap query decides inside the
// transaction; the storage exclusion constraint backstops races between
// concurrent creates.
func (s *slotUseCaseImpl) CreateSlot(ctx context.Context, instructorID uuid.UUID, start time.Time) (*SlotResult, error) {
	newSlot, err := slot.NewSlot(instructorID, start, s.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrPastSlot)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overlaps, err := tx.Slots().HasOverlap(ctx, instructorID, newSlot.Window())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlaps {
			return ErrSlotOverlap
		}

		if err := tx.Slots().Create(ctx, newSlot); err != nil {
			if infra.IsKind(err, infra.KindExclusionViolated) {
				return ErrSlotOverlap
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SlotResult{
		SlotID: newSlot.ID(),
		Start:  newSlot.Window().Start(),
		End:    newSlot.Window().End(),
	}, nil
}

func (s *slotUseCaseImpl) DeleteSlot(ctx context.Context, instructorID, slotID uuid.UUID) (bool, error) {
	var deleted bool
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Slots().DeleteAvailable(ctx, slotID, instructorID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
