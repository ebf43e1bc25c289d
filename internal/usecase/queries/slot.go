package queries

import (
	"context"
	"time"

	"yogaflow/internal/pkg/clock"

	"github.com/google/uuid"
)

type SlotQueries interface {
	// ListInstructorSlots returns the instructor's upcoming available slots
	// in start-time order.
	ListInstructorSlots(ctx context.Context, instructorID uuid.UUID) ([]*SlotView, error)
}

type SlotViewRepo interface {
	FindUpcomingByInstructor(ctx context.Context, instructorID uuid.UUID, after time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	repo  SlotViewRepo
	clock clock.Clock
}

func NewSlotQueries(repo SlotViewRepo, clock clock.Clock) SlotQueries {
	return &slotQueriesImpl{repo: repo, clock: clock}
}

func (q *slotQueriesImpl) ListInstructorSlots(ctx context.Context, instructorID uuid.UUID) ([]*SlotView, error) {
	return q.repo.FindUpcomingByInstructor(ctx, instructorID, q.clock.Now())
}
