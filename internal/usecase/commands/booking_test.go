//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"yogaflow/internal/domain/booking"
	domslot "yogaflow/internal/domain/slot"
	"yogaflow/internal/domain/user"
	"yogaflow/internal/infra"
	"yogaflow/internal/pkg/clock"
	"yogaflow/internal/pkg/errs"
	"yogaflow/internal/usecase/commands"
	"yogaflow/internal/usecase/shared"
	"yogaflow/tests/common/builder"
	mock_commands "yogaflow/tests/mock/commands"
	mock_shared "yogaflow/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingFixture struct {
	uow      *mock_shared.MockUnitOfWork
	reads    *mock_shared.MockCommandReads
	tx       *mock_shared.MockTx
	slots    *mock_shared.MockSlotRepository
	bookings *mock_shared.MockBookingRepository
	quotas   *mock_shared.MockQuotaRepository
	meetings *mock_commands.MockMeetingProvisioner
	notifier *mock_commands.MockNotifier
	clock    *clock.MockClock
	uc       commands.BookingCommands
}

func newBookingFixture(t *testing.T, now time.Time) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &bookingFixture{
		uow:      mock_shared.NewMockUnitOfWork(ctrl),
		reads:    mock_shared.NewMockCommandReads(ctrl),
		tx:       mock_shared.NewMockTx(ctrl),
		slots:    mock_shared.NewMockSlotRepository(ctrl),
		bookings: mock_shared.NewMockBookingRepository(ctrl),
		quotas:   mock_shared.NewMockQuotaRepository(ctrl),
		meetings: mock_commands.NewMockMeetingProvisioner(ctrl),
		notifier: mock_commands.NewMockNotifier(ctrl),
		clock:    clock.NewMockClock(now),
	}

	f.uow.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Slots().Return(f.slots).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Quotas().Return(f.quotas).AnyTimes()

	f.uc = commands.NewBookingUseCase(f.uow, f.meetings, f.notifier, f.clock)
	return f
}

func (f *bookingFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func TestBook_TrialConsumesQuota(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	studentID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	lockedSlot, err := sb.BuildDomain()
	require.NoError(t, err)
	studentQuota, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.StudentID = studentID
	}).BuildDomain()
	require.NoError(t, err)

	meetingInfo := &commands.MeetingInfo{JoinURL: "https://meet.example.com/x", CalendarEventID: "ev_1"}

	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.reads.EXPECT().QuotaByStudent(gomock.Any(), studentID).Return(studentQuota, nil)
	f.meetings.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(meetingInfo, nil)

	f.expectWithin()
	f.slots.EXPECT().FindByIDForUpdate(gomock.Any(), sb.ID).Return(lockedSlot, nil)
	f.bookings.EXPECT().HasConfirmedOverlap(gomock.Any(), studentID, lockedSlot.Window()).Return(false, nil)
	f.quotas.EXPECT().FindByStudentForUpdate(gomock.Any(), studentID).Return(studentQuota, nil)
	f.slots.EXPECT().UpdateStatus(gomock.Any(), sb.ID, domslot.StatusBooked).Return(nil)

	var created *booking.Booking
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b *booking.Booking) error {
			created = b
			return nil
		})
	f.quotas.EXPECT().Save(gomock.Any(), studentQuota).Return(nil)
	f.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any(), studentID, sb.InstructorID, sb.Start, gomock.Any())

	result, err := f.uc.Book(context.Background(), studentID, user.RoleStudent, sb.InstructorID, sb.ID)

	require.NoError(t, err)
	assert.True(t, result.IsTrial)
	require.NotNil(t, result.MeetingLink)
	assert.Equal(t, meetingInfo.JoinURL, *result.MeetingLink)
	assert.Equal(t, 1, studentQuota.TrialUsed())
	require.NotNil(t, created)
	assert.True(t, created.IsTrial())
	assert.Equal(t, studentID, created.StudentID())
}

func TestBook_SlotTakenUnderLock(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	studentID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	studentQuota, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.StudentID = studentID
	}).BuildDomain()
	require.NoError(t, err)

	// Preflight still sees the slot as available; the lock reveals the truth.
	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.reads.EXPECT().QuotaByStudent(gomock.Any(), studentID).Return(studentQuota, nil)
	f.meetings.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	bookedSlot, err := sb.With(func(b *builder.SlotBuilder) {
		b.Status = domslot.StatusBooked
	}).BuildDomain()
	require.NoError(t, err)

	f.expectWithin()
	f.slots.EXPECT().FindByIDForUpdate(gomock.Any(), sb.ID).Return(bookedSlot, nil)

	_, err = f.uc.Book(context.Background(), studentID, user.RoleStudent, sb.InstructorID, sb.ID)

	assert.ErrorIs(t, err, commands.ErrSlotNotAvailable)
}

func TestBook_WrongInstructorRejectedInPreflight(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)

	// The slot exists but belongs to someone else than the caller claims.
	_, err := f.uc.Book(context.Background(), uuid.New(), user.RoleStudent, uuid.New(), sb.ID)

	assert.ErrorIs(t, err, commands.ErrSlotNotAvailable)
}

func TestBook_InstructorChangedUnderLock(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	studentID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	claimedInstructor := sb.InstructorID
	studentQuota, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.StudentID = studentID
	}).BuildDomain()
	require.NoError(t, err)

	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.reads.EXPECT().QuotaByStudent(gomock.Any(), studentID).Return(studentQuota, nil)
	f.meetings.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	// Between preflight and the lock the slot was reassigned. Still available,
	// but no longer the session the student asked for.
	reassignedSlot, err := sb.With(func(b *builder.SlotBuilder) {
		b.InstructorID = uuid.New()
	}).BuildDomain()
	require.NoError(t, err)

	f.expectWithin()
	f.slots.EXPECT().FindByIDForUpdate(gomock.Any(), sb.ID).Return(reassignedSlot, nil)

	_, err = f.uc.Book(context.Background(), studentID, user.RoleStudent, claimedInstructor, sb.ID)

	assert.ErrorIs(t, err, commands.ErrSlotNotAvailable)
}

func TestBook_StudentDoubleBooking(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	studentID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	lockedSlot, err := sb.BuildDomain()
	require.NoError(t, err)
	studentQuota, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.StudentID = studentID
	}).BuildDomain()
	require.NoError(t, err)

	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.reads.EXPECT().QuotaByStudent(gomock.Any(), studentID).Return(studentQuota, nil)
	f.meetings.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	f.expectWithin()
	f.slots.EXPECT().FindByIDForUpdate(gomock.Any(), sb.ID).Return(lockedSlot, nil)
	f.bookings.EXPECT().HasConfirmedOverlap(gomock.Any(), studentID, lockedSlot.Window()).Return(true, nil)

	_, err = f.uc.Book(context.Background(), studentID, user.RoleStudent, sb.InstructorID, sb.ID)

	assert.ErrorIs(t, err, commands.ErrStudentDoubleBooking)
}

func TestBook_PaymentMethodRequiredBeforeAnySideEffect(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	studentID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	noCard, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.StudentID = studentID
		b.CustomerRef = nil
	}).BuildDomain()
	require.NoError(t, err)

	// Preflight rejects; no meeting is provisioned and no transaction opens.
	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.reads.EXPECT().QuotaByStudent(gomock.Any(), studentID).Return(noCard, nil)

	_, err = f.uc.Book(context.Background(), studentID, user.RoleStudent, sb.InstructorID, sb.ID)

	assert.ErrorIs(t, err, commands.ErrPaymentMethodRequired)
}

func TestBook_TrialExhaustedReportedOverMissingCard(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	studentID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	exhausted, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.StudentID = studentID
		b.TrialUsed = b.TrialLimit
		b.CustomerRef = nil
	}).BuildDomain()
	require.NoError(t, err)

	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.reads.EXPECT().QuotaByStudent(gomock.Any(), studentID).Return(exhausted, nil)

	_, err = f.uc.Book(context.Background(), studentID, user.RoleStudent, sb.InstructorID, sb.ID)

	assert.ErrorIs(t, err, commands.ErrQuotaExceeded)
}

func TestBook_AdminBypassesQuota(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	adminID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	lockedSlot, err := sb.BuildDomain()
	require.NoError(t, err)

	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.meetings.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	f.expectWithin()
	f.slots.EXPECT().FindByIDForUpdate(gomock.Any(), sb.ID).Return(lockedSlot, nil)
	f.bookings.EXPECT().HasConfirmedOverlap(gomock.Any(), adminID, lockedSlot.Window()).Return(false, nil)
	f.slots.EXPECT().UpdateStatus(gomock.Any(), sb.ID, domslot.StatusBooked).Return(nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any(), adminID, sb.InstructorID, sb.Start, gomock.Any())

	result, err := f.uc.Book(context.Background(), adminID, user.RoleAdmin, sb.InstructorID, sb.ID)

	require.NoError(t, err)
	assert.False(t, result.IsTrial)
	assert.Nil(t, result.MeetingLink)
}

func TestBook_MeetingFailureIsNonFatal(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	studentID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	lockedSlot, err := sb.BuildDomain()
	require.NoError(t, err)
	studentQuota, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.StudentID = studentID
	}).BuildDomain()
	require.NoError(t, err)

	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.reads.EXPECT().QuotaByStudent(gomock.Any(), studentID).Return(studentQuota, nil)
	f.meetings.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	f.expectWithin()
	f.slots.EXPECT().FindByIDForUpdate(gomock.Any(), sb.ID).Return(lockedSlot, nil)
	f.bookings.EXPECT().HasConfirmedOverlap(gomock.Any(), studentID, lockedSlot.Window()).Return(false, nil)
	f.quotas.EXPECT().FindByStudentForUpdate(gomock.Any(), studentID).Return(studentQuota, nil)
	f.slots.EXPECT().UpdateStatus(gomock.Any(), sb.ID, domslot.StatusBooked).Return(nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.quotas.EXPECT().Save(gomock.Any(), studentQuota).Return(nil)
	f.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any(), studentID, sb.InstructorID, sb.Start, gomock.Nil())

	result, err := f.uc.Book(context.Background(), studentID, user.RoleStudent, sb.InstructorID, sb.ID)

	require.NoError(t, err)
	assert.Nil(t, result.MeetingLink)
}

func TestBook_FirstBookingProvisionsQuotaRow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	studentID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	lockedSlot, err := sb.BuildDomain()
	require.NoError(t, err)
	provisioned, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.StudentID = studentID
	}).BuildDomain()
	require.NoError(t, err)

	notFound := infra.WrapRepoErr("quota not found", nil, infra.KindNotFound)

	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.reads.EXPECT().QuotaByStudent(gomock.Any(), studentID).Return(provisioned, nil)
	f.meetings.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	f.expectWithin()
	f.slots.EXPECT().FindByIDForUpdate(gomock.Any(), sb.ID).Return(lockedSlot, nil)
	f.bookings.EXPECT().HasConfirmedOverlap(gomock.Any(), studentID, lockedSlot.Window()).Return(false, nil)
	gomock.InOrder(
		f.quotas.EXPECT().FindByStudentForUpdate(gomock.Any(), studentID).Return(nil, notFound),
		f.quotas.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		f.quotas.EXPECT().FindByStudentForUpdate(gomock.Any(), studentID).Return(provisioned, nil),
	)
	f.slots.EXPECT().UpdateStatus(gomock.Any(), sb.ID, domslot.StatusBooked).Return(nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.quotas.EXPECT().Save(gomock.Any(), provisioned).Return(nil)
	f.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any(), studentID, sb.InstructorID, sb.Start, gomock.Any())

	_, err = f.uc.Book(context.Background(), studentID, user.RoleStudent, sb.InstructorID, sb.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, provisioned.TrialUsed())
}

func TestBook_DuplicateBookingMapsToSlotNotAvailable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	studentID := uuid.New()
	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(48 * time.Hour)
	})
	lockedSlot, err := sb.BuildDomain()
	require.NoError(t, err)
	studentQuota, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.StudentID = studentID
	}).BuildDomain()
	require.NoError(t, err)

	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)
	f.reads.EXPECT().QuotaByStudent(gomock.Any(), studentID).Return(studentQuota, nil)
	f.meetings.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	f.expectWithin()
	f.slots.EXPECT().FindByIDForUpdate(gomock.Any(), sb.ID).Return(lockedSlot, nil)
	f.bookings.EXPECT().HasConfirmedOverlap(gomock.Any(), studentID, lockedSlot.Window()).Return(false, nil)
	f.quotas.EXPECT().FindByStudentForUpdate(gomock.Any(), studentID).Return(studentQuota, nil)
	f.slots.EXPECT().UpdateStatus(gomock.Any(), sb.ID, domslot.StatusBooked).Return(nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("duplicate booking", errs.New("unique violation"), infra.KindDuplicateKey))

	_, err = f.uc.Book(context.Background(), studentID, user.RoleStudent, sb.InstructorID, sb.ID)

	assert.ErrorIs(t, err, commands.ErrSlotNotAvailable)
	assert.Equal(t, 0, studentQuota.TrialUsed())
}

func TestBook_SlotNotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	slotID := uuid.New()
	f.reads.EXPECT().SlotByID(gomock.Any(), slotID).
		Return(nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound))

	_, err := f.uc.Book(context.Background(), uuid.New(), user.RoleStudent, uuid.New(), slotID)

	assert.ErrorIs(t, err, commands.ErrSlotNotFound)
}

func TestBook_PastSlotRejectedInPreflight(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newBookingFixture(t, now)

	sb := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Start = now.Add(-time.Hour)
	})
	f.reads.EXPECT().SlotByID(gomock.Any(), sb.ID).Return(sb.BuildSnapshot(), nil)

	_, err := f.uc.Book(context.Background(), uuid.New(), user.RoleStudent, sb.InstructorID, sb.ID)

	assert.ErrorIs(t, err, commands.ErrSlotNotAvailable)
}
