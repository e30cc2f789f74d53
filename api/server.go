package api

import (
	"time"

	"github.com/CristiGvl/picoCPUProbe/internal/platform"
	"github.com/CristiGvl/picoCPUProbe/internal/snapshot"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Server represents the API server
type Server struct {
	app    *fiber.App
	prober *snapshot.Prober
}

// NewServer creates a new API server
func NewServer() (*Server, error) {
	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ServerHeader: "picoCPUProbe",
		AppName:      "picoCPUProbe v1.0",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
	}))

	server := &Server{
		app:    app,
		prober: snapshot.NewProber(),
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Snapshot endpoints
	api.Get("/snapshot", s.getSnapshot)
	api.Get("/snapshot/topology", s.getTopology)
	api.Get("/snapshot/caches", s.getCaches)
	api.Get("/snapshot/features", s.getFeatures)
	api.Get("/snapshot/frequency", s.getFrequency)

	// Text report
	api.Get("/report", s.getReport)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"timestamp": time.Now().Unix(),
	})
}
