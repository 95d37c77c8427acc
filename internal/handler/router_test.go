//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"villabook/internal/handler"
	"villabook/internal/handler/api"
	"villabook/internal/pkg/config"
	"villabook/internal/usecase/commands"
	"villabook/internal/usecase/queries"
	"villabook/tests/common/httptest"
	commandsmock "villabook/tests/mock/commands"
	queriesmock "villabook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockRoomQueries     *queriesmock.MockRoomQueries
	mockBookingQueries  *queriesmock.MockBookingQueries
	mockAdminQueries    *queriesmock.MockAdminQueries
	mockBookingCommands *commandsmock.MockBookingCommands
	mockAuthCommands    *commandsmock.MockAuthCommands
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockBookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockAdminQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.mockBookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockAuthCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) buildRouter(cfg config.Config) *gin.Engine {
	engine := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler.NewRouter(
		engine,
		cfg,
		logger,
		api.NewRoomHandler(s.mockRoomQueries),
		api.NewBookingHandler(s.mockBookingCommands),
		api.NewAdminHandler(s.mockAdminQueries),
		api.NewAuthHandler(s.mockAuthCommands),
		api.NewTestSupportHandler(s.mockBookingQueries, s.mockBookingCommands),
	)
	return engine
}

func (s *RouterTestSuite) TestHealthCheck() {
	router := s.buildRouter(config.NewTestConfig())

	rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/health", nil, "")

	var body map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("ok", body["status"])
}

func (s *RouterTestSuite) TestPublicRoutesMounted() {
	router := s.buildRouter(config.NewTestConfig())

	s.mockRoomQueries.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]*queries.RoomView{}, nil)
	rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/rooms", nil, "")
	s.Equal(http.StatusOK, rec.Code)

	s.mockAdminQueries.EXPECT().Villas(gomock.Any()).Return([]*queries.VillaView{}, nil)
	rec = httptest.PerformRequest(s.T(), router, http.MethodGet, "/admin/villas", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestTestEndpointsGatedByConfig() {
	id := uuid.New()

	s.Run("mounted when enabled", func() {
		cfg := config.NewTestConfig()
		s.Require().True(cfg.Test.EnableTestEndpoints)
		router := s.buildRouter(cfg)

		s.mockBookingCommands.EXPECT().
			CleanupTestBooking(gomock.Any(), id).
			Return(&commands.CleanupResult{Message: "No matching test booking to clean up"}, nil)

		rec := httptest.PerformRequest(s.T(), router, http.MethodDelete, "/test/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("absent when disabled", func() {
		cfg := config.NewTestConfig()
		cfg.Test.EnableTestEndpoints = false
		router := s.buildRouter(cfg)

		rec := httptest.PerformRequest(s.T(), router, http.MethodDelete, "/test/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)

		rec = httptest.PerformRequest(s.T(), router, http.MethodPost, "/test/availability", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
