//go:build unit || e2e

package builder

import (
	"time"

	domslot "yogaflow/internal/domain/slot"
	"yogaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID           uuid.UUID
	InstructorID uuid.UUID
	Start        time.Time
	Status       domslot.Status
	CreatedAt    time.Time
}

func NewSlotBuilder() *SlotBuilder {
	now := time.Now()
	return &SlotBuilder{
		ID:           uuid.New(),
		InstructorID: uuid.New(),
		Start:        now.Add(48 * time.Hour),
		Status:       domslot.StatusAvailable,
		CreatedAt:    now,
	}
}

func (s *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(s)
	return s
}

func (s *SlotBuilder) BuildDomain() (*domslot.Slot, error) {
	return domslot.ReconstructSlot(s.ID, s.InstructorID, domslot.NewWindow(s.Start), s.Status, s.CreatedAt)
}

func (s *SlotBuilder) BuildSnapshot() *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:           s.ID,
		InstructorID: s.InstructorID,
		Start:        s.Start,
		End:          s.Start.Add(domslot.SessionDuration),
		Status:       string(s.Status),
	}
}
