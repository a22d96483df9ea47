package handler

import (
	"errors"
	"strconv"

	"freight-cost/internal/core/logger"
	"freight-cost/internal/core/response"
	"freight-cost/internal/features/costmodel/domain"
	"freight-cost/internal/features/costmodel/ports"
	scenariodomain "freight-cost/internal/features/scenarios/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CostHandler handles HTTP requests for the cost model.
type CostHandler struct {
	service ports.CostService
}

// NewCostHandler creates a new CostHandler.
func NewCostHandler(service ports.CostService) *CostHandler {
	return &CostHandler{
		service: service,
	}
}

// ModesResponse describes the parameters a scenario resolves to.
type ModesResponse struct {
	Scenario   string            `json:"scenario,omitempty"`
	Modes      []string          `json:"modes"`
	Parameters domain.Parameters `json:"parameters"`
}

// CostsResponse holds the per-mode costs of one raw distance.
type CostsResponse struct {
	Scenario string                `json:"scenario,omitempty"`
	Costs    []domain.ShipmentCost `json:"costs"`
}

// GetModes handles GET /modes.
// @Summary Active cost model parameters
// @Description Returns the per-mode parameter table and economic constants, optionally with a scenario applied.
// @Tags Costs
// @Produce json
// @Param scenario query string false "Scenario name"
// @Success 200 {object} ModesResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /modes [get]
func (h *CostHandler) GetModes(c *fiber.Ctx) error {
	scenario := c.Query("scenario")
	model, err := h.service.Model(c.Context(), scenario)
	if err != nil {
		return fail(c, err)
	}

	modes := make([]string, 0, len(domain.AllModes()))
	for _, m := range domain.AllModes() {
		modes = append(modes, string(m))
	}

	return c.JSON(ModesResponse{
		Scenario:   scenario,
		Modes:      modes,
		Parameters: model.Parameters(),
	})
}

// GetCosts handles GET /costs.
// @Summary Evaluate costs for a raw distance
// @Description Computes fuel, carbon and time penalty per mode. Without weight_kg the reference weight is used.
// @Tags Costs
// @Produce json
// @Param distance_km query number true "Distance in km"
// @Param weight_kg query number false "Shipment weight in kg"
// @Param mode query []string false "Transport modes (road, rail, air)" collectionFormat(multi)
// @Param scenario query string false "Scenario name"
// @Success 200 {object} CostsResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /costs [get]
func (h *CostHandler) GetCosts(c *fiber.Ctx) error {
	distance, err := strconv.ParseFloat(c.Query("distance_km"), 64)
	if err != nil {
		return response.BadRequest(c, "distance_km must be a number")
	}

	modes, err := domain.ParseTransportModes(queryValues(c, "mode"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	scenario := c.Query("scenario")
	model, err := h.service.Model(c.Context(), scenario)
	if err != nil {
		return fail(c, err)
	}

	weight := model.Parameters().ReferenceWeightKg
	if raw := c.Query("weight_kg"); raw != "" {
		if weight, err = strconv.ParseFloat(raw, 64); err != nil {
			return response.BadRequest(c, "weight_kg must be a number")
		}
	}

	costs, err := h.service.EstimateWith(model, distance, modes, weight)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(CostsResponse{
		Scenario: scenario,
		Costs:    costs,
	})
}

// queryValues returns every value of a repeated query parameter.
func queryValues(c *fiber.Ctx, key string) []string {
	var values []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}

func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownMode),
		errors.Is(err, domain.ErrNegativeDistance),
		errors.Is(err, domain.ErrNegativeWeight),
		errors.Is(err, domain.ErrCostOverflow):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, scenariodomain.ErrScenarioNotFound):
		return response.NotFound(c, err.Error())
	default:
		logger.Get().Error("Cost evaluation failed", zap.Error(err))
		return response.Internal(c)
	}
}
