package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"villabook/internal/handler/api"
	"villabook/internal/handler/middleware"
	"villabook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authHandler *api.AuthHandler,
	testSupportHandler *api.TestSupportHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, roomHandler, bookingHandler, adminHandler, authHandler, testSupportHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authHandler *api.AuthHandler,
	testSupportHandler *api.TestSupportHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rooms := engine.Group("/rooms")
	{
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: roomHandler.SearchRooms},
			{Method: http.MethodGet, Path: "/featured", Handler: roomHandler.FeaturedRooms},
		})
	}

	bookings := engine.Group("/bookings")
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
		})
	}

	admin := engine.Group("/admin")
	{
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			{Method: http.MethodGet, Path: "/villas", Handler: adminHandler.ListVillas},
			{Method: http.MethodGet, Path: "/rooms", Handler: adminHandler.ListRooms},
			{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
		})
	}

	// Smoke-test surface, never mounted in production deployments
	if cfg.Test.EnableTestEndpoints {
		test := engine.Group("/test")
		{
			addRoutes(test, []route{
				{Method: http.MethodPost, Path: "/availability", Handler: testSupportHandler.CheckAvailability},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: testSupportHandler.GetBooking},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: testSupportHandler.DeleteBooking},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
