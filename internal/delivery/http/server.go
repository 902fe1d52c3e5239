package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/timeline-visualizer/internal/config"
	"github.com/timeline-visualizer/internal/delivery/http/handler"
	"github.com/timeline-visualizer/internal/delivery/http/middleware"
	"github.com/timeline-visualizer/internal/pkg/errors"
	"github.com/timeline-visualizer/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	timelineHandler    *handler.TimelineHandler
	preferencesHandler *handler.PreferencesHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	timelineHandler *handler.TimelineHandler,
	preferencesHandler *handler.PreferencesHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Timeline Visualizer",
		BodyLimit:    cfg.BodyLimit(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		timelineHandler:    timelineHandler,
		preferencesHandler: preferencesHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
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

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Timeline routes
	api.Post("/timeline", s.timelineHandler.Upload)
	api.Get("/timeline", s.timelineHandler.Summary)
	api.Get("/timeline/view", s.timelineHandler.View)
	api.Get("/timeline/bounds", s.timelineHandler.Bounds)
	api.Get("/timeline/heatmap", s.timelineHandler.Heatmap)
	api.Get("/timeline/events", s.timelineHandler.Events)
	api.Post("/timeline/filter", s.timelineHandler.ApplyFilter)
	api.Delete("/timeline/filter", s.timelineHandler.ClearFilter)

	// Preferences routes
	api.Get("/preferences", s.preferencesHandler.Get)
	api.Put("/preferences", s.preferencesHandler.Update)
	api.Delete("/preferences", s.preferencesHandler.Reset)
}

// App - доступ к fiber.App, используется в тестах
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

// customErrorHandler - кастомный обработчик ошибок.
// Ошибки fiber (404 маршрута, превышение BodyLimit) отдаются в формате utils.ErrorResponse.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := errors.ErrInternalServer

		if e, ok := err.(*fiber.Error); ok {
			switch e.Code {
			case fiber.StatusRequestEntityTooLarge:
				appErr = errors.ErrFileTooLarge
			case fiber.StatusInternalServerError:
			default:
				appErr = errors.New(codeFromStatus(e.Code), e.Message, e.Code)
			}
		}

		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
		}

		return utils.SendError(c, appErr)
	}
}

func codeFromStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestTimeout:
		return "REQUEST_TIMEOUT"
	default:
		return "INVALID_REQUEST"
	}
}
