package response

import (
	"time"

	"yogaflow/internal/usecase/commands"
	"yogaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	SlotID       uuid.UUID `json:"slotId"`
	InstructorID uuid.UUID `json:"instructorId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Status       string    `json:"status"`
	IsTrial      bool      `json:"isTrial"`
	MeetingLink  *string   `json:"meetingLink,omitempty"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	SlotID       uuid.UUID `json:"slotId"`
	StudentID    uuid.UUID `json:"studentId"`
	InstructorID uuid.UUID `json:"instructorId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Status       string    `json:"status"`
	IsTrial      bool      `json:"isTrial"`
	MeetingLink  *string   `json:"meetingLink,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CancellationResponse struct {
	ID           uuid.UUID `json:"id"`
	Status       string    `json:"status"`
	ByInstructor bool      `json:"byInstructor"`
	Refunded     bool      `json:"refunded"`
}

type EligibilityResponse struct {
	Eligible          bool    `json:"eligible"`
	Reason            *string `json:"reason,omitempty"`
	IsTrial           bool    `json:"isTrial"`
	Status            string  `json:"status"`
	TrialRemaining    int     `json:"trialRemaining"`
	SessionsRemaining int     `json:"sessionsRemaining"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		ID:           r.BookingID,
		SlotID:       r.SlotID,
		InstructorID: r.InstructorID,
		Start:        r.Start,
		End:          r.End,
		Status:       "confirmed",
		IsTrial:      r.IsTrial,
		MeetingLink:  r.MeetingLink,
	}
}

func FromBookingView(v *queries.BookingView) *BookingListResponse {
	return &BookingListResponse{
		ID:           v.ID,
		SlotID:       v.SlotID,
		StudentID:    v.StudentID,
		InstructorID: v.InstructorID,
		Start:        v.Start,
		End:          v.End,
		Status:       v.Status,
		IsTrial:      v.IsTrial,
		MeetingLink:  v.MeetingLink,
		CreatedAt:    v.CreatedAt,
	}
}

func FromCancellationResult(r *commands.CancellationResult) *CancellationResponse {
	return &CancellationResponse{
		ID:           r.BookingID,
		Status:       "cancelled",
		ByInstructor: r.ByInstructor,
		Refunded:     r.Refunded,
	}
}

func FromEligibilityView(v *queries.EligibilityView) *EligibilityResponse {
	return &EligibilityResponse{
		Eligible:          v.Eligible,
		Reason:            v.Reason,
		IsTrial:           v.IsTrial,
		Status:            v.Status,
		TrialRemaining:    v.TrialRemaining,
		SessionsRemaining: v.SessionsRemaining,
	}
}
