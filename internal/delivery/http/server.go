package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/config"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/delivery/http/handler"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	spotHandler   *handler.SpotHandler
	nearbyHandler *handler.NearbyHandler
	scoreHandler  *handler.ScoreHandler
	importHandler *handler.ImportHandler
	statsHandler  *handler.StatsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	spotHandler *handler.SpotHandler,
	nearbyHandler *handler.NearbyHandler,
	scoreHandler *handler.ScoreHandler,
	importHandler *handler.ImportHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "LocAbility",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		spotHandler:   spotHandler,
		nearbyHandler: nearbyHandler,
		scoreHandler:  scoreHandler,
		importHandler: importHandler,
		statsHandler:  statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

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

	// Spot lifecycle
	api.Post("/spots", s.spotHandler.Create)
	api.Get("/spots", s.spotHandler.List)
	api.Get("/spots/:id", s.spotHandler.Get)
	api.Put("/spots/:id", s.spotHandler.Update)
	api.Delete("/spots/:id", s.spotHandler.Delete)
	api.Post("/spots/:id/upvote", s.spotHandler.Upvote)
	api.Post("/spots/:id/downvote", s.spotHandler.Downvote)

	// Proximity and scoring
	api.Post("/radius/spots", s.nearbyHandler.SearchByRadius)
	api.Post("/radius/score", s.scoreHandler.AreaScore)

	// Geodata import
	api.Post("/import", s.importHandler.Run)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
