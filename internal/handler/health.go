package handler

import (
	"vidquiz/internal/domain"
	"vidquiz/internal/dto"
	"vidquiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports liveness and the state of optional dependencies
type HealthHandler struct {
	diagnostics domain.DiagnosticsSink
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(diagnostics domain.DiagnosticsSink) *HealthHandler {
	return &HealthHandler{diagnostics: diagnostics}
}

// Health godoc
// @Summary Service health
// @Description Returns ok, or degraded when the diagnostics store is unreachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := "ok"
	if h.diagnostics != nil {
		if err := h.diagnostics.Ping(c.UserContext()); err != nil {
			logger.Get().Warn("Diagnostics store unreachable", zap.Error(err))
			status = "degraded"
		}
	}
	return c.JSON(dto.HealthResponse{Status: status})
}
