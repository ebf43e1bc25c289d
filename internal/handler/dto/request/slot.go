package request

import (
	"time"
)

// CreateSlotRequest carries only the start; every session is the fixed
// 45-minute length.
type CreateSlotRequest struct {
	Start time.Time `json:"start" binding:"required"`
}
