package handler

import (
	"errors"
	"strconv"

	"freight-cost/internal/core/logger"
	"freight-cost/internal/core/response"
	citydomain "freight-cost/internal/features/cities/domain"
	"freight-cost/internal/features/distance/domain"
	"freight-cost/internal/features/distance/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DistanceHandler serves the distance matrix.
type DistanceHandler struct {
	matrices ports.MatrixProvider
}

// NewDistanceHandler creates a new DistanceHandler.
func NewDistanceHandler(matrices ports.MatrixProvider) *DistanceHandler {
	return &DistanceHandler{
		matrices: matrices,
	}
}

// MatrixResponse is the full matrix; KM[i][j] is the distance between IDs[i] and IDs[j].
type MatrixResponse struct {
	Fingerprint string      `json:"fingerprint"`
	IDs         []int       `json:"ids"`
	KM          [][]float64 `json:"km"`
}

// PairResponse is one matrix entry.
type PairResponse struct {
	Origin      int     `json:"origin"`
	Destination int     `json:"destination"`
	DistanceKm  float64 `json:"distance_km"`
}

// GetMatrix handles GET /distances.
// @Summary Get the distance matrix
// @Description Great-circle distances in kilometers between every pair of catalog cities.
// @Tags Distances
// @Produce json
// @Success 200 {object} MatrixResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /distances [get]
func (h *DistanceHandler) GetMatrix(c *fiber.Ctx) error {
	snap, err := h.matrices.Snapshot(c.Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(MatrixResponse{
		Fingerprint: snap.Fingerprint,
		IDs:         snap.Matrix.IDs(),
		KM:          snap.Matrix.Rows(),
	})
}

// GetPair handles GET /distances/:origin/:destination.
// @Summary Get the distance between two cities
// @Tags Distances
// @Produce json
// @Param origin path int true "Origin city ID"
// @Param destination path int true "Destination city ID"
// @Success 200 {object} PairResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /distances/{origin}/{destination} [get]
func (h *DistanceHandler) GetPair(c *fiber.Ctx) error {
	origin, err := strconv.Atoi(c.Params("origin"))
	if err != nil {
		return response.BadRequest(c, "origin must be an integer city id")
	}
	destination, err := strconv.Atoi(c.Params("destination"))
	if err != nil {
		return response.BadRequest(c, "destination must be an integer city id")
	}

	snap, err := h.matrices.Snapshot(c.Context())
	if err != nil {
		return h.fail(c, err)
	}

	d, err := snap.Matrix.Distance(origin, destination)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(PairResponse{Origin: origin, Destination: destination, DistanceKm: d})
}

func (h *DistanceHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, citydomain.ErrEmptyCatalog), errors.Is(err, domain.ErrUnknownCity):
		return response.NotFound(c, err.Error())
	default:
		logger.Get().Error("Failed to serve distances", zap.Error(err))
		return response.Internal(c)
	}
}
