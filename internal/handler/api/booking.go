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

type BookingHandler struct {
	bookingCommands      commands.BookingCommands
	cancellationCommands commands.CancellationCommands
	bookingQueries       queries.BookingQueries
	eligibilityQueries   queries.EligibilityQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	cancellationCommands commands.CancellationCommands,
	bookingQueries queries.BookingQueries,
	eligibilityQueries queries.EligibilityQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands:      bookingCommands,
		cancellationCommands: cancellationCommands,
		bookingQueries:       bookingQueries,
		eligibilityQueries:   eligibilityQueries,
	}
}

// @Summary Book a slot
// @Description Book one available slot for the authenticated student
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Book(c.Request.Context(), studentID, role, req.InstructorID, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrSlotNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is not available",
			})
		case errors.Is(err, commands.ErrStudentDoubleBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You already have a session in this time window",
			})
		case errors.Is(err, commands.ErrPaymentMethodRequired):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "A payment method on file is required for trial bookings",
			})
		case errors.Is(err, commands.ErrQuotaExceeded):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Your subscription does not allow this booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking as its student or instructor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	result, err := h.cancellationCommands.Cancel(c.Request.Context(), actorID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled",
			})
		case errors.Is(err, commands.ErrPastSession):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Session has already started",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancellationResult(result))
}

// @Summary List my bookings
// @Description List every booking the user takes part in
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByParticipant(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Booking eligibility
// @Description Report whether the student could book one more session now
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EligibilityResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/eligibility [get]
func (h *BookingHandler) GetEligibility(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.eligibilityQueries.GetForStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEligibilityView(view))
}
