package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker is implemented by optional dependencies reported by the health endpoint
type HealthChecker interface {
	Health(ctx context.Context) error
}

// unavailableDependency reports a dependency that could not be set up at startup
type unavailableDependency struct {
	err error
}

// UnavailableDependency returns a checker that always fails with err
func UnavailableDependency(err error) HealthChecker {
	return unavailableDependency{err: err}
}

func (d unavailableDependency) Health(ctx context.Context) error {
	return d.err
}

// HealthHandler - проверка состояния сервиса
type HealthHandler struct {
	checks map[string]HealthChecker
	logger *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler; nil checkers are skipped.
// Optional dependencies only degrade the reported status.
func NewHealthHandler(checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	active := make(map[string]HealthChecker, len(checks))
	for name, check := range checks {
		if check != nil {
			active[name] = check
		}
	}
	return &HealthHandler{checks: active, logger: logger}
}

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	deps := fiber.Map{}
	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "unavailable"
			status = "degraded"
			continue
		}
		deps[name] = "ok"
	}

	return c.JSON(fiber.Map{
		"status":       status,
		"time":         time.Now(),
		"dependencies": deps,
	})
}
