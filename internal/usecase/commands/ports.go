package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionDetails is what the outside world needs to set up one session.
type SessionDetails struct {
	BookingID    uuid.UUID
	StudentID    uuid.UUID
	InstructorID uuid.UUID
	Start        time.Time
	End          time.Time
}

type MeetingInfo struct {
	JoinURL         string
	CalendarEventID string
}

// MeetingProvisioner creates the video meeting for a session. Failures are
// non-fatal to booking; the session proceeds without a link.
type MeetingProvisioner interface {
	Provision(ctx context.Context, details SessionDetails) (*MeetingInfo, error)
}

// Notifier enqueues outbound notifications. Implementations must not fail the
// calling command; delivery is best-effort and asynchronous.
type Notifier interface {
	BookingConfirmed(ctx context.Context, bookingID, studentID, instructorID uuid.UUID, start time.Time, meetingLink *string)
	BookingCancelled(ctx context.Context, bookingID, recipientID uuid.UUID, start time.Time, byInstructor, refunded bool)
	SessionReminder(ctx context.Context, bookingID, recipientID uuid.UUID, start time.Time, meetingLink *string)
}
