package queries

import (
	"context"

	"yogaflow/internal/domain/booking"
	"yogaflow/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// ListByParticipant returns every booking the user takes part in, as
	// student or instructor, newest session first.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo  BookingViewRepo
	clock clock.Clock
}

func NewBookingQueries(repo BookingViewRepo, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, clock: clock}
}

func (q *bookingQueriesImpl) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.repo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Completion is never written back; a confirmed booking whose session has
	// ended reads as completed.
	now := q.clock.Now()
	for _, v := range views {
		if v.Status == booking.StatusConfirmed.String() && !v.End.After(now) {
			v.Status = booking.StatusCompleted.String()
		}
	}
	return views, nil
}
