package shared

import (
	"context"
	"time"

	"yogaflow/internal/domain/booking"
	"yogaflow/internal/domain/quota"
	"yogaflow/internal/domain/slot"

	"github.com/google/uuid"
)

// UnitOfWork is the only path to the datastore's transactional guarantees.
// Row locks taken inside Within are the source of truth for mutual
// exclusion across server instances.
type UnitOfWork interface {
	// Within: full read-write transaction with serialization-failure retry
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: single-statement reads on the pool, outside any transaction
	Reads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Quotas() QuotaRepository
}

// CommandReads serves the advisory pre-flight checks; authoritative state is
// always re-read under lock inside the transaction.
type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	QuotaByStudent(ctx context.Context, studentID uuid.UUID) (*quota.Quota, error)
}

type SlotRepository interface {
	Create(ctx context.Context, s *slot.Slot) error
	// FindByIDForUpdate takes the row lock that totally orders concurrent
	// booking attempts on the slot.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	HasOverlap(ctx context.Context, instructorID uuid.UUID, w slot.Window) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status slot.Status) error
	// DeleteAvailable removes the slot only while available and owned by the
	// instructor; returns false when no row matched (idempotent delete).
	DeleteAvailable(ctx context.Context, id, instructorID uuid.UUID) (bool, error)
	ListUpcomingByInstructor(ctx context.Context, instructorID uuid.UUID, after time.Time) ([]*slot.Slot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*BookingWithSlot, error)
	HasConfirmedOverlap(ctx context.Context, studentID uuid.UUID, w slot.Window) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	// ClaimDueReminders flips reminder_sent for confirmed bookings starting
	// inside the window and returns the claimed rows, so concurrent sweeps
	// never double-send.
	ClaimDueReminders(ctx context.Context, from, until time.Time) ([]*ReminderTarget, error)
}

type QuotaRepository interface {
	Create(ctx context.Context, q *quota.Quota) error
	FindByStudentForUpdate(ctx context.Context, studentID uuid.UUID) (*quota.Quota, error)
	FindByCustomerRefForUpdate(ctx context.Context, customerRef string) (*quota.Quota, error)
	Save(ctx context.Context, q *quota.Quota) error
}
