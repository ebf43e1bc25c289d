//go:build unit

package booking_test

import (
	"testing"
	"time"

	"yogaflow/internal/domain/booking"
	"yogaflow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCancellation(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		mutate           func(*builder.BookingBuilder)
		actor            func(*builder.BookingBuilder) uuid.UUID
		slotStart        time.Time
		wantByInstructor bool
		wantRefund       bool
		errIs            error
	}{
		{
			name:       "student cancelling well ahead gets the unit back",
			mutate:     func(b *builder.BookingBuilder) {},
			actor:      func(b *builder.BookingBuilder) uuid.UUID { return b.StudentID },
			slotStart:  now.Add(booking.LateCancellationWindow + time.Hour),
			wantRefund: true,
		},
		{
			name:      "student cancelling exactly at the cutoff forfeits the unit",
			mutate:    func(b *builder.BookingBuilder) {},
			actor:     func(b *builder.BookingBuilder) uuid.UUID { return b.StudentID },
			slotStart: now.Add(booking.LateCancellationWindow),
		},
		{
			name:      "student cancelling late forfeits the unit",
			mutate:    func(b *builder.BookingBuilder) {},
			actor:     func(b *builder.BookingBuilder) uuid.UUID { return b.StudentID },
			slotStart: now.Add(time.Hour),
		},
		{
			name:             "instructor cancelling late still refunds",
			mutate:           func(b *builder.BookingBuilder) {},
			actor:            func(b *builder.BookingBuilder) uuid.UUID { return b.InstructorID },
			slotStart:        now.Add(time.Hour),
			wantByInstructor: true,
			wantRefund:       true,
		},
		{
			name:             "instructor cancelling early refunds",
			mutate:           func(b *builder.BookingBuilder) {},
			actor:            func(b *builder.BookingBuilder) uuid.UUID { return b.InstructorID },
			slotStart:        now.Add(booking.LateCancellationWindow + time.Hour),
			wantByInstructor: true,
			wantRefund:       true,
		},
		{
			name:      "a stranger cannot cancel",
			mutate:    func(b *builder.BookingBuilder) {},
			actor:     func(b *builder.BookingBuilder) uuid.UUID { return uuid.New() },
			slotStart: now.Add(24 * time.Hour),
			errIs:     booking.ErrNotParticipant,
		},
		{
			name: "already cancelled booking cannot be cancelled again",
			mutate: func(b *builder.BookingBuilder) {
				b.Status = booking.StatusCancelled
			},
			actor:     func(b *builder.BookingBuilder) uuid.UUID { return b.StudentID },
			slotStart: now.Add(24 * time.Hour),
			errIs:     booking.ErrAlreadyCancelled,
		},
		{
			name:      "session that already started cannot be cancelled",
			mutate:    func(b *builder.BookingBuilder) {},
			actor:     func(b *builder.BookingBuilder) uuid.UUID { return b.StudentID },
			slotStart: now,
			errIs:     booking.ErrPastSession,
		},
		{
			name: "participant check runs before the cancelled check",
			mutate: func(b *builder.BookingBuilder) {
				b.Status = booking.StatusCancelled
			},
			actor:     func(b *builder.BookingBuilder) uuid.UUID { return uuid.New() },
			slotStart: now.Add(24 * time.Hour),
			errIs:     booking.ErrNotParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := builder.NewBookingBuilder().With(tt.mutate)
			b, err := bb.BuildDomain()
			require.NoError(t, err)

			res, err := booking.ResolveCancellation(b, tt.actor(bb), tt.slotStart, now)

			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantByInstructor, res.ByInstructor)
			assert.Equal(t, tt.wantRefund, res.Refund)
		})
	}
}

func TestBooking_IsParticipant(t *testing.T) {
	bb := builder.NewBookingBuilder()
	b, err := bb.BuildDomain()
	require.NoError(t, err)

	assert.True(t, b.IsParticipant(bb.StudentID))
	assert.True(t, b.IsParticipant(bb.InstructorID))
	assert.False(t, b.IsParticipant(uuid.New()))
}
