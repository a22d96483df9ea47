package handler

import (
	"errors"
	"strconv"

	"freight-cost/internal/core/logger"
	"freight-cost/internal/core/response"
	"freight-cost/internal/features/cities/domain"
	"freight-cost/internal/features/cities/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CityHandler handles HTTP requests for the city catalog.
type CityHandler struct {
	service ports.CityService
}

// NewCityHandler creates a new CityHandler.
func NewCityHandler(service ports.CityService) *CityHandler {
	return &CityHandler{
		service: service,
	}
}

// ReplaceCitiesResponse is returned after a successful catalog replacement.
type ReplaceCitiesResponse struct {
	Count       int    `json:"count"`
	Fingerprint string `json:"fingerprint"`
}

// ReplaceCities handles PUT /cities.
// @Summary Replace the city catalog
// @Description Stores the prepared table of city records. Records are validated for coordinate ranges and unique ids; no filtering is applied.
// @Tags Cities
// @Accept json
// @Produce json
// @Param cities body []domain.City true "City records"
// @Success 200 {object} ReplaceCitiesResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /cities [put]
func (h *CityHandler) ReplaceCities(c *fiber.Ctx) error {
	var cities []domain.City
	if err := c.BodyParser(&cities); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	catalog, err := h.service.ReplaceCatalog(c.Context(), cities)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCity) || errors.Is(err, domain.ErrDuplicateCityID) {
			return response.BadRequest(c, err.Error())
		}
		logger.Get().Error("Failed to replace city catalog", zap.Error(err))
		return response.Internal(c)
	}

	return c.Status(fiber.StatusOK).JSON(ReplaceCitiesResponse{
		Count:       catalog.Len(),
		Fingerprint: catalog.Fingerprint(),
	})
}

// ListCities handles GET /cities.
// @Summary List the city catalog
// @Tags Cities
// @Produce json
// @Success 200 {object} domain.Catalog
// @Failure 500 {object} response.ErrorResponse
// @Router /cities [get]
func (h *CityHandler) ListCities(c *fiber.Ctx) error {
	catalog, err := h.service.Catalog(c.Context())
	if err != nil {
		logger.Get().Error("Failed to load city catalog", zap.Error(err))
		return response.Internal(c)
	}
	return c.JSON(catalog)
}

// GetCity handles GET /cities/:id.
// @Summary Get one city
// @Tags Cities
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} domain.City
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /cities/{id} [get]
func (h *CityHandler) GetCity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "city id must be an integer")
	}

	city, err := h.service.GetCity(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotFound) {
			return response.NotFound(c, err.Error())
		}
		logger.Get().Error("Failed to get city", zap.Int("id", id), zap.Error(err))
		return response.Internal(c)
	}
	return c.JSON(city)
}
