package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/scenic-tour/internal/config"
	"github.com/scenic-tour/internal/delivery/http/handler"
	"github.com/scenic-tour/internal/delivery/http/middleware"
	apperrors "github.com/scenic-tour/internal/pkg/errors"
	"github.com/scenic-tour/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	tourHandler   *handler.TourHandler
	healthHandler *handler.HealthHandler
	gatherer      prometheus.Gatherer
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tourHandler *handler.TourHandler,
	healthHandler *handler.HealthHandler,
	gatherer prometheus.Gatherer,
) *Server {
	// the write deadline must outlive the tour deadline
	writeTimeout := cfg.Server.RequestTimeout + 5*time.Second

	app := fiber.New(fiber.Config{
		AppName:      "Scenic Tour",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    64 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		tourHandler:   tourHandler,
		healthHandler: healthHandler,
		gatherer:      gatherer,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestIDMiddleware())
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	// Tour route used by the web client
	s.app.Post("/api/tour", s.tourHandler.PlanTour)

	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthHandler.Health)
	api.Post("/tour", s.tourHandler.PlanTour)
}

// App returns the underlying fiber application
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			logger.Warn("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", e.Code),
				zap.Error(err),
			)
			return c.Status(e.Code).JSON(utils.ErrorResponse{
				Error: apperrors.New(errorCode(e.Code), e.Message, e.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "INVALID_REQUEST"
	default:
		if status >= 500 {
			return "INTERNAL_SERVER_ERROR"
		}
		return "INVALID_REQUEST"
	}
}
