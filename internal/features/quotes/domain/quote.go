package domain

import (
	"errors"

	costdomain "freight-cost/internal/features/costmodel/domain"
)

var (
	// ErrEmptyBatch is returned for a batch without requests.
	ErrEmptyBatch = errors.New("batch contains no quote requests")
	// ErrBatchTooLarge is returned when a batch exceeds the configured item limit.
	ErrBatchTooLarge = errors.New("batch exceeds the maximum number of quote requests")
)

// WeightBasis tells where the weight of a quote came from.
type WeightBasis string

const (
	// WeightExplicit means the caller supplied the weight.
	WeightExplicit WeightBasis = "explicit"
	// WeightDemand means the weight is the destination's demand weight.
	WeightDemand WeightBasis = "demand"
)

// Request asks for the per-mode costs of moving freight between two cities.
type Request struct {
	OriginID      int
	DestinationID int
	// WeightKg is optional; nil selects the destination's demand weight.
	WeightKg *float64
	// Modes defaults to every supported mode when empty.
	Modes    []costdomain.TransportMode
	Scenario string
}

// Quote is the per-mode cost breakdown for one origin/destination pair.
type Quote struct {
	OriginID      int                       `json:"origin"`
	DestinationID int                       `json:"destination"`
	DistanceKm    float64                   `json:"distance_km"`
	WeightKg      float64                   `json:"weight_kg"`
	WeightBasis   WeightBasis               `json:"weight_basis"`
	Scenario      string                    `json:"scenario,omitempty"`
	Costs         []costdomain.ShipmentCost `json:"costs"`
}
