package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	ID           uuid.UUID `json:"id"`
	InstructorID uuid.UUID `json:"instructor_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Status       string    `json:"status"`
}

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	SlotID       uuid.UUID `json:"slot_id"`
	StudentID    uuid.UUID `json:"student_id"`
	InstructorID uuid.UUID `json:"instructor_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Status       string    `json:"status"`
	IsTrial      bool      `json:"is_trial"`
	MeetingLink  *string   `json:"meeting_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type EligibilityView struct {
	Eligible          bool    `json:"eligible"`
	Reason            *string `json:"reason,omitempty"`
	IsTrial           bool    `json:"is_trial"`
	Status            string  `json:"status"`
	TrialRemaining    int     `json:"trial_remaining"`
	SessionsRemaining int     `json:"sessions_remaining"`
}
