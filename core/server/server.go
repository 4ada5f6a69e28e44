package server

import (
	"fmt"
	"net"

	"stock-api/core/logger"
	"stock-api/core/middleware/jsonbody"
	"stock-api/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "stock-api/docs/swagger"
)

// Server is the HTTP entry point of the service.
type Server struct {
	app    *fiber.App
	cfg    Config
	logger *zap.Logger
}

// New wires the Fiber application: global middleware, the database router
// mounted under DatabasePrefix, and the root greeting. A nil database router
// leaves the prefix unmounted.
func New(cfg Config, logg *zap.Logger, database *fiber.App) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own readiness line
		IdleTimeout:           IdleTimeout,
		BodyLimit:             cfg.BodyLimit,
	})

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. Request logging, debug only
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Debug("Request error", zap.Error(err))
		}
		return err
	})

	// 3. JSON bodies
	app.Use(jsonbody.New())

	if cfg.Swagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	if database != nil {
		app.Mount(DatabasePrefix, database)
	}

	app.Get("/", Hello)

	return &Server{app: app, cfg: cfg, logger: logg}
}

// Hello returns a static greeting.
// @Summary Hello world
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello world!"})
}

// App exposes the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Bind opens the listening socket on the configured port.
func (s *Server) Bind() (net.Listener, error) {
	ln, err := net.Listen(s.app.Config().Network, s.cfg.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to bind port %s: %w", s.cfg.Port, err)
	}
	return ln, nil
}

// Serve accepts connections on ln until the server shuts down.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Listen binds the port, logs readiness and serves. It only returns on
// failure or after Shutdown.
func (s *Server) Listen() error {
	ln, err := s.Bind()
	if err != nil {
		return err
	}
	s.logger.Info("Server running", zap.String("port", s.cfg.Port))
	return s.Serve(ln)
}

// Shutdown stops accepting connections and closes idle ones.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
