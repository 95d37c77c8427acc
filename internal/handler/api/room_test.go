//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"villabook/internal/handler/api"
	resdto "villabook/internal/handler/dto/response"
	"villabook/internal/usecase/queries"
	"villabook/tests/common/builder"
	"villabook/tests/common/httptest"
	queriesmock "villabook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockRoomQueries
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockQueries)

	s.router.GET("/rooms", s.handler.SearchRooms)
	s.router.GET("/rooms/featured", s.handler.FeaturedRooms)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

// ================================================================================
// TestSearchRooms
// ================================================================================

func (s *RoomHandlerTestSuite) TestSearchRooms() {
	s.Run("success: returns 200 with room list and no filters", func() {
		want := []*queries.RoomView{builder.NewRoomBuilder().BuildView()}
		s.mockQueries.EXPECT().
			Search(gomock.Any(), queries.RoomSearchFilters{}).
			Return(want, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(want[0].Name, body[0].Name)
		s.Equal(want[0].VillaName, body[0].VillaName)
	})

	s.Run("success: forwards parsed filters to the query layer", func() {
		s.mockQueries.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters queries.RoomSearchFilters) ([]*queries.RoomView, error) {
				s.Require().NotNil(filters.Guests)
				s.Equal(2, *filters.Guests)
				s.Require().NotNil(filters.VillaName)
				s.Equal("Demo", *filters.VillaName)
				s.Require().NotNil(filters.MinPrice)
				s.Equal(50.0, *filters.MinPrice)
				s.Require().NotNil(filters.RoomType)
				s.Equal("deluxe", *filters.RoomType)
				s.Equal([]string{"WiFi", "TV"}, filters.Amenities)
				s.Require().NotNil(filters.CheckIn)
				s.Equal(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), *filters.CheckIn)
				return []*queries.RoomView{}, nil
			})

		url := "/rooms?guests=2&villa_name=Demo&min_price=50&room_type=deluxe&amenities=WiFi&amenities=TV&check_in=2026-09-10&check_out=2026-09-14"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: empty result serializes as an empty array", func() {
		s.mockQueries.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return([]*queries.RoomView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 Bad Request on malformed filter values", func() {
		testCases := []struct {
			name        string
			url         string
			expectedMsg string
		}{
			{name: "malformed check_in", url: "/rooms?check_in=10-09-2026", expectedMsg: "YYYY-MM-DD"},
			{name: "malformed check_out", url: "/rooms?check_out=notadate", expectedMsg: "YYYY-MM-DD"},
			{name: "non-numeric guests", url: "/rooms?guests=two", expectedMsg: "guests"},
			{name: "zero guests", url: "/rooms?guests=0", expectedMsg: "guests"},
			{name: "non-numeric min_price", url: "/rooms?min_price=cheap", expectedMsg: "price"},
			{name: "non-numeric max_price", url: "/rooms?max_price=expensive", expectedMsg: "price"},
			{name: "unknown room_type", url: "/rooms?room_type=penthouse", expectedMsg: "room_type"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestFeaturedRooms
// ================================================================================

func (s *RoomHandlerTestSuite) TestFeaturedRooms() {
	s.Run("success: returns 200 with the featured list", func() {
		want := []*queries.RoomView{
			builder.NewRoomBuilder().WithPrice(60).BuildView(),
			builder.NewRoomBuilder().WithPrice(85).BuildView(),
		}
		s.mockQueries.EXPECT().Featured(gomock.Any()).Return(want, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/featured", nil, "")

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(60.0, body[0].PricePerNight)
	})
}
