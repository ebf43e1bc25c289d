package repository

import (
	"context"
	"errors"
	"time"

	"yogaflow/internal/domain/booking"
	"yogaflow/internal/domain/slot"
	"yogaflow/internal/infra"
	"yogaflow/internal/infra/db"
	"yogaflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (id, student_id, instructor_id, slot_id, status, is_trial, meeting_link, calendar_event_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.StudentID(), b.InstructorID(), b.SlotID(),
		b.Status().String(), b.IsTrial(), b.MeetingLink(), b.CalendarEventID())
	if err != nil {
		// Unique slot_id is the safety net behind the slot row lock.
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("slot already booked", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingWithSlot, error) {
	query := `
		SELECT b.id, b.student_id, b.instructor_id, b.slot_id, b.status, b.is_trial,
		       b.meeting_link, b.calendar_event_id, b.reminder_sent, b.created_at,
		       s.start_time, s.end_time
		FROM bookings b
		JOIN slots s ON s.id = b.slot_id
		WHERE b.id = $1
		FOR UPDATE OF b
	`

	var (
		bookingID, studentID         uuid.UUID
		instructorID, slotID         uuid.UUID
		status                       string
		isTrial, reminderSent        bool
		meetingLink, calendarEventID *string
		createdAt                    time.Time
		slotStart, slotEnd           time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bookingID, &studentID, &instructorID, &slotID, &status, &isTrial,
		&meetingLink, &calendarEventID, &reminderSent, &createdAt,
		&slotStart, &slotEnd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	b, err := booking.ReconstructBooking(
		bookingID, studentID, instructorID, slotID,
		booking.Status(status), isTrial, meetingLink, calendarEventID,
		reminderSent, createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status in storage", err)
	}

	return &shared.BookingWithSlot{
		Booking:   b,
		SlotStart: slotStart,
		SlotEnd:   slotEnd,
	}, nil
}

func (r *BookingRepository) HasConfirmedOverlap(ctx context.Context, studentID uuid.UUID, w slot.Window) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings b
			JOIN slots s ON s.id = b.slot_id
			WHERE b.student_id = $1
			  AND b.status = 'confirmed'
			  AND s.start_time < $3
			  AND s.end_time > $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, studentID, w.Start(), w.End()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// ClaimDueReminders marks and returns in one statement; redelivered sweeps
// find nothing left to claim.
func (r *BookingRepository) ClaimDueReminders(ctx context.Context, from, until time.Time) ([]*shared.ReminderTarget, error) {
	query := `
		UPDATE bookings b
		SET reminder_sent = TRUE
		FROM slots s
		WHERE s.id = b.slot_id
		  AND b.status = 'confirmed'
		  AND b.reminder_sent = FALSE
		  AND s.start_time > $1
		  AND s.start_time <= $2
		RETURNING b.id, b.student_id, b.instructor_id, s.start_time, b.meeting_link
	`

	rows, err := r.db.Query(ctx, query, from, until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due reminders", err)
	}
	defer rows.Close()

	var targets []*shared.ReminderTarget
	for rows.Next() {
		t := &shared.ReminderTarget{}
		if err := rows.Scan(&t.BookingID, &t.StudentID, &t.InstructorID, &t.SlotStart, &t.MeetingLink); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder target", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reminder targets", err)
	}
	return targets, nil
}
