package server

import (
	"context"
	"fmt"
	"time"

	"freight-cost/internal/core/config"
	"freight-cost/internal/core/logger"
	"freight-cost/internal/core/response"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "freight-cost/docs/swagger"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
	// deps are pinged by the health endpoint.
	deps map[string]Pinger
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// New creates a new Server instance with configured middleware and the
// operational routes (/health, /metrics, /swagger).
func New(cfg *config.AppConfig, deps map[string]Pinger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               logger.ServiceName,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	s := &Server{
		App:  app,
		cfg:  cfg,
		deps: deps,
	}

	app.Get("/health", s.health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	return s
}

// health handles GET /health.
// @Summary Liveness and dependency check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	res := HealthResponse{Status: "ok", Checks: make(map[string]string, len(s.deps))}
	status := fiber.StatusOK
	for name, dep := range s.deps {
		if err := dep.Ping(ctx); err != nil {
			logger.Get().Warn("Health check failed",
				zap.String("dependency", name),
				zap.String("ray_id", response.RayID(c)),
				zap.Error(err),
			)
			res.Checks[name] = "unavailable"
			res.Status = "degraded"
			status = fiber.StatusServiceUnavailable
			continue
		}
		res.Checks[name] = "ok"
	}

	return c.Status(status).JSON(res)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.App.ShutdownWithTimeout(timeout)
}
