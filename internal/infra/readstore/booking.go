package readstore

import (
	"context"

	"yogaflow/internal/infra"
	"yogaflow/internal/infra/db"
	"yogaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	query := `
		SELECT b.id, b.slot_id, b.student_id, b.instructor_id,
		       s.start_time, s.end_time, b.status, b.is_trial, b.meeting_link, b.created_at
		FROM bookings b
		JOIN slots s ON s.id = b.slot_id
		WHERE b.student_id = $1 OR b.instructor_id = $1
		ORDER BY s.start_time DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		v := &queries.BookingView{}
		if err := rows.Scan(&v.ID, &v.SlotID, &v.StudentID, &v.InstructorID,
			&v.Start, &v.End, &v.Status, &v.IsTrial, &v.MeetingLink, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return views, nil
}
