package repository

import (
	"context"
	"errors"
	"time"

	"yogaflow/internal/domain/slot"
	"yogaflow/internal/infra"
	"yogaflow/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) error {
	query := `
		INSERT INTO slots (id, instructor_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		s.ID(), s.InstructorID(), s.Window().Start(), s.Window().End(), s.Status().String())
	if err != nil {
		if isExclusionViolation(err) {
			return infra.WrapRepoErr("overlapping slot exists", err, infra.KindExclusionViolated)
		}
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

// FindByIDForUpdate locks the slot row; concurrent bookings of the same slot
// serialize here.
func (r *SlotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	query := `
		SELECT id, instructor_id, start_time, end_time, status, created_at
		FROM slots
		WHERE id = $1
		FOR UPDATE
	`
	return r.scanSlot(r.db.QueryRow(ctx, query, id))
}

func (r *SlotRepository) HasOverlap(ctx context.Context, instructorID uuid.UUID, w slot.Window) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM slots
			WHERE instructor_id = $1
			  AND status <> 'cancelled'
			  AND start_time < $3
			  AND end_time > $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, instructorID, w.Start(), w.End()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check slot overlap", err)
	}
	return exists, nil
}

func (r *SlotRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status slot.Status) error {
	query := `UPDATE slots SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) DeleteAvailable(ctx context.Context, id, instructorID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM slots
		WHERE id = $1 AND instructor_id = $2 AND status = 'available'
	`

	tag, err := r.db.Exec(ctx, query, id, instructorID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete slot", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SlotRepository) ListUpcomingByInstructor(ctx context.Context, instructorID uuid.UUID, after time.Time) ([]*slot.Slot, error) {
	query := `
		SELECT id, instructor_id, start_time, end_time, status, created_at
		FROM slots
		WHERE instructor_id = $1 AND status = 'available' AND start_time > $2
		ORDER BY start_time ASC
	`

	rows, err := r.db.Query(ctx, query, instructorID, after)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming slots", err)
	}
	defer rows.Close()

	var slots []*slot.Slot
	for rows.Next() {
		s, err := scanSlotFromRows(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}
	return slots, nil
}

func (r *SlotRepository) scanSlot(row pgx.Row) (*slot.Slot, error) {
	var (
		id, instructorID uuid.UUID
		start, end       time.Time
		status           string
		createdAt        time.Time
	)
	if err := row.Scan(&id, &instructorID, &start, &end, &status, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan slot", err)
	}
	return reconstructSlot(id, instructorID, start, end, status, createdAt)
}

func scanSlotFromRows(rows pgx.Rows) (*slot.Slot, error) {
	var (
		id, instructorID uuid.UUID
		start, end       time.Time
		status           string
		createdAt        time.Time
	)
	if err := rows.Scan(&id, &instructorID, &start, &end, &status, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan slot row", err)
	}
	return reconstructSlot(id, instructorID, start, end, status, createdAt)
}

func reconstructSlot(id, instructorID uuid.UUID, start, end time.Time, status string, createdAt time.Time) (*slot.Slot, error) {
	window, err := slot.ReconstructWindow(start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot window in storage", err)
	}
	s, err := slot.ReconstructSlot(id, instructorID, window, slot.Status(status), createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot status in storage", err)
	}
	return s, nil
}
