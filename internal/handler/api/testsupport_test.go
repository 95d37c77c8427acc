//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"villabook/internal/handler/api"
	reqdto "villabook/internal/handler/dto/request"
	resdto "villabook/internal/handler/dto/response"
	"villabook/internal/usecase/commands"
	"villabook/internal/usecase/queries"
	"villabook/tests/common/builder"
	"villabook/tests/common/httptest"
	"villabook/tests/common/testutil"
	commandsmock "villabook/tests/mock/commands"
	queriesmock "villabook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TestSupportHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockBookingQueries
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.TestSupportHandler
}

func (s *TestSupportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewTestSupportHandler(s.mockQueries, s.mockCommands)

	s.router.POST("/test/availability", s.handler.CheckAvailability)
	s.router.GET("/test/bookings/:id", s.handler.GetBooking)
	s.router.DELETE("/test/bookings/:id", s.handler.DeleteBooking)
}

func (s *TestSupportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTestSupportHandlerSuite(t *testing.T) {
	suite.Run(t, new(TestSupportHandlerTestSuite))
}

func (s *TestSupportHandlerTestSuite) TestCheckAvailability() {
	url := "/test/availability"

	reqBody := reqdto.AvailabilityRequest{
		RoomID:   uuid.New(),
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-14",
	}
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	s.Run("success: reports an available room", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), reqBody.RoomID, checkIn, checkOut).
			Return(&queries.AvailabilityResult{Available: true, Message: "Room is available"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body queries.AvailabilityResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal("Room is available", body.Message)
	})

	s.Run("success: reports conflicts", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), reqBody.RoomID, checkIn, checkOut).
			Return(&queries.AvailabilityResult{
				Available:           false,
				ConflictingBookings: 1,
				Message:             "Room is not available for selected dates",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body queries.AvailabilityResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal(int64(1), body.ConflictingBookings)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name        string
			mutate      func(m map[string]any)
			expectedMsg string
		}{
			{name: "missing field: room_id", mutate: testutil.Field("room_id", nil), expectedMsg: "Invalid request format"},
			{name: "missing field: check_in", mutate: testutil.Field("check_in", nil), expectedMsg: "Invalid request format"},
			{name: "malformed check_in", mutate: testutil.Field("check_in", "10/09/2026"), expectedMsg: "YYYY-MM-DD"},
			{name: "malformed check_out", mutate: testutil.Field("check_out", "whenever"), expectedMsg: "YYYY-MM-DD"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})
}

func (s *TestSupportHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/test/bookings/" + returnView.ID.String()

	s.Run("success: returns 200 with the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 Bad Request on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/test/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found for a missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 404 Not Found when the bookings table does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(nil, queries.ErrStoreNotProvisioned)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 Internal Server Error on lookup failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(nil, queries.ErrBookingLookupInternal)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *TestSupportHandlerTestSuite) TestDeleteBooking() {
	id := uuid.New()
	url := "/test/bookings/" + id.String()

	s.Run("success: returns 200 with the cleanup message", func() {
		s.mockCommands.EXPECT().
			CleanupTestBooking(gomock.Any(), id).
			Return(&commands.CleanupResult{Deleted: true, Message: "Test booking cleaned up successfully"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Test booking cleaned up successfully", body["message"])
	})

	s.Run("success: reports when nothing matched", func() {
		s.mockCommands.EXPECT().
			CleanupTestBooking(gomock.Any(), id).
			Return(&commands.CleanupResult{Message: "No matching test booking to clean up"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("No matching test booking to clean up", body["message"])
	})

	s.Run("error: 400 Bad Request on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/test/bookings/oops", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 500 Internal Server Error on cleanup failure", func() {
		s.mockCommands.EXPECT().
			CleanupTestBooking(gomock.Any(), id).
			Return(nil, commands.ErrDatabaseOperationFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
