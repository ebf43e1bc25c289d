//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"yogaflow/internal/domain/user"
	"yogaflow/internal/handler/api"
	resdto "yogaflow/internal/handler/dto/response"
	"yogaflow/internal/usecase/commands"
	"yogaflow/internal/usecase/queries"
	"yogaflow/tests/common/httptest"
	commandsmock "yogaflow/tests/mock/commands"
	queriesmock "yogaflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockBookings     *commandsmock.MockBookingCommands
	mockCancellation *commandsmock.MockCancellationCommands
	mockQueries      *queriesmock.MockBookingQueries
	mockEligibility  *queriesmock.MockEligibilityQueries
	handler          *api.BookingHandler
	userID           uuid.UUID
	userRole         user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockCancellation = commandsmock.NewMockCancellationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockEligibility = queriesmock.NewMockEligibilityQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBookings, s.mockCancellation, s.mockQueries, s.mockEligibility)

	s.userID = uuid.New()
	s.userRole = user.RoleStudent

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.userRole)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/eligibility", authMiddleware, s.handler.GetEligibility)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	slotID := uuid.New()
	instructorID := uuid.New()
	reqBody := map[string]any{"slotId": slotID, "instructorId": instructorID}

	s.Run("success: returns 201 with the booking", func() {
		start := time.Now().Add(24 * time.Hour)
		result := &commands.BookingResult{
			BookingID:    uuid.New(),
			SlotID:       slotID,
			InstructorID: instructorID,
			Start:        start,
			End:          start.Add(45 * time.Minute),
			IsTrial:      true,
		}
		s.mockBookings.EXPECT().Book(gomock.Any(), s.userID, s.userRole, instructorID, slotID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(result.BookingID, res.ID)
		s.Equal("confirmed", res.Status)
		s.True(res.IsTrial)
	})

	s.Run("unauthorized: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("bad request: returns 400 for missing slotId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("bad request: returns 400 for missing instructorId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"slotId": slotID}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "slot not found maps to 404", err: commands.ErrSlotNotFound, expectCode: http.StatusNotFound, expectMsg: "Slot not found"},
		{name: "slot taken maps to 409", err: commands.ErrSlotNotAvailable, expectCode: http.StatusConflict, expectMsg: "not available"},
		{name: "double booking maps to 409", err: commands.ErrStudentDoubleBooking, expectCode: http.StatusConflict, expectMsg: "time window"},
		{name: "missing payment method maps to 402", err: commands.ErrPaymentMethodRequired, expectCode: http.StatusPaymentRequired, expectMsg: "payment method"},
		{name: "quota exceeded maps to 403", err: commands.ErrQuotaExceeded, expectCode: http.StatusForbidden, expectMsg: "subscription"},
		{name: "storage failure maps to 500", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}
	for _, tc := range errCases {
		s.Run(tc.name, func() {
			s.mockBookings.EXPECT().Book(gomock.Any(), s.userID, s.userRole, instructorID, slotID).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 200 with the resolution", func() {
		result := &commands.CancellationResult{
			BookingID:    bookingID,
			StudentID:    s.userID,
			InstructorID: uuid.New(),
			SlotStart:    time.Now().Add(24 * time.Hour),
			Refunded:     true,
		}
		s.mockCancellation.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var res resdto.CancellationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(bookingID, res.ID)
		s.Equal("cancelled", res.Status)
		s.True(res.Refunded)
	})

	s.Run("bad request: returns 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "unknown booking maps to 404", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound, expectMsg: "Booking not found"},
		{name: "already cancelled maps to 409", err: commands.ErrAlreadyCancelled, expectCode: http.StatusConflict, expectMsg: "already cancelled"},
		{name: "started session maps to 422", err: commands.ErrPastSession, expectCode: http.StatusUnprocessableEntity, expectMsg: "already started"},
	}
	for _, tc := range errCases {
		s.Run(tc.name, func() {
			s.mockCancellation.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns the user's bookings", func() {
		views := []*queries.BookingView{
			{ID: uuid.New(), Status: "confirmed"},
			{ID: uuid.New(), Status: "completed"},
		}
		s.mockQueries.EXPECT().ListByParticipant(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var res []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 2)
		s.Equal("completed", res[1].Status)
	})
}

func (s *BookingHandlerTestSuite) TestGetEligibility() {
	s.Run("success: reports an eligible student", func() {
		view := &queries.EligibilityView{
			Eligible:          true,
			IsTrial:           true,
			Status:            "trial",
			TrialRemaining:    2,
			SessionsRemaining: 4,
		}
		s.mockEligibility.EXPECT().GetForStudent(gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/eligibility", nil, "bearer-token")

		var res resdto.EligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Eligible)
		s.True(res.IsTrial)
		s.Equal(2, res.TrialRemaining)
	})
}
