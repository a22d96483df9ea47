package handler

import (
	"errors"

	"freight-cost/internal/core/logger"
	"freight-cost/internal/core/response"
	"freight-cost/internal/features/scenarios/domain"
	"freight-cost/internal/features/scenarios/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ScenarioHandler handles HTTP requests for what-if scenarios.
type ScenarioHandler struct {
	service ports.ScenarioService
}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler(service ports.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{
		service: service,
	}
}

// SaveScenarioRequest represents the request body for storing a scenario.
type SaveScenarioRequest struct {
	Description string           `json:"description"`
	Overrides   domain.Overrides `json:"overrides"`
	TTLSeconds  int              `json:"ttl_seconds"`
}

// SaveScenario handles PUT /scenarios/:name.
// @Summary Store a what-if scenario
// @Description Creates or replaces a named set of cost model parameter overrides.
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param name path string true "Scenario name"
// @Param scenario body SaveScenarioRequest true "Scenario details"
// @Success 200 {object} domain.Scenario
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /scenarios/{name} [put]
func (h *ScenarioHandler) SaveScenario(c *fiber.Ctx) error {
	var req SaveScenarioRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	name := c.Params("name")
	scenario, err := h.service.SaveScenario(c.Context(), name, req.Description, req.Overrides, req.TTLSeconds)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidScenarioName) || errors.Is(err, domain.ErrInvalidOverride) {
			return response.BadRequest(c, err.Error())
		}
		logger.Get().Error("Failed to save scenario", zap.String("name", name), zap.Error(err))
		return response.Internal(c)
	}

	return c.Status(fiber.StatusOK).JSON(scenario)
}

// GetScenario handles GET /scenarios/:name.
// @Summary Get a what-if scenario
// @Tags Scenarios
// @Produce json
// @Param name path string true "Scenario name"
// @Success 200 {object} domain.Scenario
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /scenarios/{name} [get]
func (h *ScenarioHandler) GetScenario(c *fiber.Ctx) error {
	name := c.Params("name")
	scenario, err := h.service.GetScenario(c.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrScenarioNotFound) {
			return response.NotFound(c, err.Error())
		}
		logger.Get().Error("Failed to get scenario", zap.String("name", name), zap.Error(err))
		return response.Internal(c)
	}

	return c.Status(fiber.StatusOK).JSON(scenario)
}

// RemoveScenario handles DELETE /scenarios/:name.
// @Summary Remove a what-if scenario
// @Tags Scenarios
// @Param name path string true "Scenario name"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /scenarios/{name} [delete]
func (h *ScenarioHandler) RemoveScenario(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.RemoveScenario(c.Context(), name); err != nil {
		if errors.Is(err, domain.ErrScenarioNotFound) {
			return response.NotFound(c, err.Error())
		}
		logger.Get().Error("Failed to remove scenario", zap.String("name", name), zap.Error(err))
		return response.Internal(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
