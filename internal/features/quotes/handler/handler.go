package handler

import (
	"errors"
	"strconv"

	"freight-cost/internal/core/logger"
	"freight-cost/internal/core/response"
	citydomain "freight-cost/internal/features/cities/domain"
	costdomain "freight-cost/internal/features/costmodel/domain"
	distancedomain "freight-cost/internal/features/distance/domain"
	"freight-cost/internal/features/quotes/domain"
	"freight-cost/internal/features/quotes/ports"
	scenariodomain "freight-cost/internal/features/scenarios/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for shipment quotes.
type QuoteHandler struct {
	service ports.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteRequest is one item of a batch request.
type QuoteRequest struct {
	Origin      int      `json:"origin"`
	Destination int      `json:"destination"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
	Modes       []string `json:"modes,omitempty"`
	Scenario    string   `json:"scenario,omitempty"`
}

// BatchRequest is the body of POST /quotes/batch.
type BatchRequest struct {
	Requests []QuoteRequest `json:"requests"`
}

// BatchResponse holds the quotes of a batch in request order.
type BatchResponse struct {
	Quotes []domain.Quote `json:"quotes"`
}

// GetQuote handles GET /quotes.
// @Summary Quote a shipment between two cities
// @Description Returns fuel, carbon and time penalty per mode. Without weight_kg the destination's demand weight is used.
// @Tags Quotes
// @Produce json
// @Param origin query int true "Origin city ID"
// @Param destination query int true "Destination city ID"
// @Param weight_kg query number false "Shipment weight in kg"
// @Param mode query []string false "Transport modes (road, rail, air)" collectionFormat(multi)
// @Param scenario query string false "Scenario name"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /quotes [get]
func (h *QuoteHandler) GetQuote(c *fiber.Ctx) error {
	origin, err := strconv.Atoi(c.Query("origin"))
	if err != nil {
		return response.BadRequest(c, "origin must be an integer city id")
	}
	destination, err := strconv.Atoi(c.Query("destination"))
	if err != nil {
		return response.BadRequest(c, "destination must be an integer city id")
	}

	req := QuoteRequest{
		Origin:      origin,
		Destination: destination,
		Scenario:    c.Query("scenario"),
	}
	for _, v := range c.Context().QueryArgs().PeekMulti("mode") {
		req.Modes = append(req.Modes, string(v))
	}
	if raw := c.Query("weight_kg"); raw != "" {
		w, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "weight_kg must be a number")
		}
		req.WeightKg = &w
	}

	r, err := req.toDomain()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	quote, err := h.service.Quote(c.Context(), r)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(quote)
}

// BatchQuotes handles POST /quotes/batch.
// @Summary Quote many shipments
// @Description Evaluates every request against the same distance matrix. The first invalid request fails the batch.
// @Tags Quotes
// @Accept json
// @Produce json
// @Param batch body BatchRequest true "Quote requests"
// @Success 200 {object} BatchResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /quotes/batch [post]
func (h *QuoteHandler) BatchQuotes(c *fiber.Ctx) error {
	var body BatchRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	reqs := make([]domain.Request, 0, len(body.Requests))
	for i, item := range body.Requests {
		r, err := item.toDomain()
		if err != nil {
			return response.BadRequest(c, "request "+strconv.Itoa(i)+": "+err.Error())
		}
		reqs = append(reqs, r)
	}

	quotes, err := h.service.Batch(c.Context(), reqs)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(BatchResponse{Quotes: quotes})
}

func (r QuoteRequest) toDomain() (domain.Request, error) {
	modes, err := costdomain.ParseTransportModes(r.Modes)
	if err != nil {
		return domain.Request{}, err
	}
	return domain.Request{
		OriginID:      r.Origin,
		DestinationID: r.Destination,
		WeightKg:      r.WeightKg,
		Modes:         modes,
		Scenario:      r.Scenario,
	}, nil
}

func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, costdomain.ErrUnknownMode),
		errors.Is(err, costdomain.ErrNegativeDistance),
		errors.Is(err, costdomain.ErrNegativeWeight),
		errors.Is(err, costdomain.ErrCostOverflow),
		errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, domain.ErrBatchTooLarge):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, distancedomain.ErrUnknownCity),
		errors.Is(err, citydomain.ErrCityNotFound),
		errors.Is(err, citydomain.ErrEmptyCatalog),
		errors.Is(err, scenariodomain.ErrScenarioNotFound):
		return response.NotFound(c, err.Error())
	default:
		logger.Get().Error("Quote failed", zap.Error(err))
		return response.Internal(c)
	}
}
