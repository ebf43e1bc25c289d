package response

import (
	"time"

	"yogaflow/internal/usecase/commands"
	"yogaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID           uuid.UUID `json:"id"`
	InstructorID uuid.UUID `json:"instructorId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Status       string    `json:"status"`
}

type CreateSlotResponse struct {
	ID    uuid.UUID `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func FromSlotResult(r *commands.SlotResult) *CreateSlotResponse {
	return &CreateSlotResponse{
		ID:    r.SlotID,
		Start: r.Start,
		End:   r.End,
	}
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:           v.ID,
		InstructorID: v.InstructorID,
		Start:        v.Start,
		End:          v.End,
		Status:       v.Status,
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(views))
	for i, v := range views {
		out[i] = FromSlotView(v)
	}
	return out
}
