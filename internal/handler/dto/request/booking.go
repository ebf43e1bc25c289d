package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SlotID       uuid.UUID `json:"slotId" binding:"required"`
	InstructorID uuid.UUID `json:"instructorId" binding:"required"`
}
