package api

import (
	"errors"
	"net/http"

	reqdto "yogaflow/internal/handler/dto/request"
	resdto "yogaflow/internal/handler/dto/response"
	"yogaflow/internal/handler/middleware"
	"yogaflow/internal/usecase/commands"
	"yogaflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotCommands commands.SlotCommands
	slotQueries  queries.SlotQueries
}

func NewSlotHandler(slotCommands commands.SlotCommands, slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotCommands: slotCommands,
		slotQueries:  slotQueries,
	}
}

// @Summary Create slot
// @Description Open a bookable 45-minute slot starting at the given time
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.CreateSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	instructorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.slotCommands.CreateSlot(c.Request.Context(), instructorID, req.Start)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPastSlot):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Slot start time must be in the future",
			})
		case errors.Is(err, commands.ErrSlotOverlap):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot overlaps an existing slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotResult(result))
}

// @Summary Delete slot
// @Description Delete an available slot; booked slots must be cancelled first
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	instructorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	deleted, err := h.slotCommands.DeleteSlot(c.Request.Context(), instructorID, slotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Slot not found or not deletable",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List instructor slots
// @Description List an instructor's upcoming available slots
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Instructor ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /instructors/{id}/slots [get]
func (h *SlotHandler) ListInstructorSlots(c *gin.Context) {
	instructorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid instructor ID format",
		})
		return
	}

	views, err := h.slotQueries.ListInstructorSlots(c.Request.Context(), instructorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}
