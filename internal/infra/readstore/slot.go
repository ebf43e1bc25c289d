package readstore

import (
	"context"
	"time"

	"yogaflow/internal/infra"
	"yogaflow/internal/infra/db"
	"yogaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (r *SlotReadStore) FindUpcomingByInstructor(ctx context.Context, instructorID uuid.UUID, after time.Time) ([]*queries.SlotView, error) {
	query := `
		SELECT id, instructor_id, start_time, end_time, status
		FROM slots
		WHERE instructor_id = $1 AND status = 'available' AND start_time > $2
		ORDER BY start_time ASC
	`

	rows, err := r.db.Query(ctx, query, instructorID, after)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list instructor slots", err)
	}
	defer rows.Close()

	views := []*queries.SlotView{}
	for rows.Next() {
		v := &queries.SlotView{}
		if err := rows.Scan(&v.ID, &v.InstructorID, &v.Start, &v.End, &v.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot views", err)
	}
	return views, nil
}
