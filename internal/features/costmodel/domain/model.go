package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeDistance is returned for a negative, NaN or infinite distance.
	ErrNegativeDistance = errors.New("distance must be a non-negative finite number")
	// ErrNegativeWeight is returned for a negative, NaN or infinite weight.
	ErrNegativeWeight = errors.New("weight must be a non-negative finite number")
	// ErrCostOverflow is returned when a cost component is not a finite number.
	ErrCostOverflow = errors.New("cost exceeds the representable range")
)

// ShipmentCost is the landed cost of one shipment by one mode.
type ShipmentCost struct {
	Mode       TransportMode `json:"mode"`
	DistanceKm float64       `json:"distance_km"`
	WeightKg   float64       `json:"weight_kg"`

	FuelCost    float64 `json:"fuel_cost"`
	CarbonCost  float64 `json:"carbon_cost"`
	TimePenalty float64 `json:"time_penalty"`

	// Breakdown of TimePenalty.
	TravelHours    float64 `json:"travel_hours"`
	HoldingCost    float64 `json:"holding_cost"`
	ServicePenalty float64 `json:"service_penalty"`

	Total float64 `json:"total"`
}

// CostModel evaluates the per-mode cost functions against a fixed parameter set.
// It holds no mutable state and is safe for concurrent use.
type CostModel struct {
	params Parameters
}

// NewCostModel validates params and returns a model bound to a private copy of them.
func NewCostModel(params Parameters) (*CostModel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &CostModel{params: params.Clone()}, nil
}

// Parameters returns a copy of the parameters the model was built with.
func (c *CostModel) Parameters() Parameters {
	return c.params.Clone()
}

// FuelCost is the transport cost of moving weightKg over distanceKm.
// Road and rail are linear in tonne-km. Air adds a takeoff overhead that
// saturates with distance, so short flights cost disproportionately more.
func (c *CostModel) FuelCost(distanceKm float64, mode TransportMode, weightKg float64) (float64, error) {
	mp, err := c.lookup(distanceKm, mode, weightKg)
	if err != nil {
		return 0, err
	}
	fuel := c.fuelCost(mp, distanceKm, mode, weightKg)
	if err := finite(mode, "fuel_cost", fuel); err != nil {
		return 0, err
	}
	return fuel, nil
}

// CarbonCost monetizes the CO2 emitted by the shipment.
func (c *CostModel) CarbonCost(distanceKm float64, mode TransportMode, weightKg float64) (float64, error) {
	mp, err := c.lookup(distanceKm, mode, weightKg)
	if err != nil {
		return 0, err
	}
	carbon := c.carbonCost(mp, distanceKm, weightKg)
	if err := finite(mode, "carbon_cost", carbon); err != nil {
		return 0, err
	}
	return carbon, nil
}

// TimePenalty is the pipeline holding cost plus the service penalty for
// transits longer than the delivery window.
func (c *CostModel) TimePenalty(distanceKm float64, mode TransportMode, weightKg float64) (float64, error) {
	mp, err := c.lookup(distanceKm, mode, weightKg)
	if err != nil {
		return 0, err
	}
	_, holding, service := c.timePenalty(mp, distanceKm, weightKg)
	if err := finite(mode, "time_penalty", holding, service, holding+service); err != nil {
		return 0, err
	}
	return holding + service, nil
}

// TimePenaltyReference is TimePenalty for the configured reference shipment weight.
func (c *CostModel) TimePenaltyReference(distanceKm float64, mode TransportMode) (float64, error) {
	return c.TimePenalty(distanceKm, mode, c.params.ReferenceWeightKg)
}

// Evaluate computes every cost component for one (distance, mode, weight) triple.
func (c *CostModel) Evaluate(distanceKm float64, mode TransportMode, weightKg float64) (ShipmentCost, error) {
	mp, err := c.lookup(distanceKm, mode, weightKg)
	if err != nil {
		return ShipmentCost{}, err
	}

	hours, holding, service := c.timePenalty(mp, distanceKm, weightKg)
	sc := ShipmentCost{
		Mode:           mode,
		DistanceKm:     distanceKm,
		WeightKg:       weightKg,
		FuelCost:       c.fuelCost(mp, distanceKm, mode, weightKg),
		CarbonCost:     c.carbonCost(mp, distanceKm, weightKg),
		TimePenalty:    holding + service,
		TravelHours:    hours,
		HoldingCost:    holding,
		ServicePenalty: service,
	}
	sc.Total = sc.FuelCost + sc.CarbonCost + sc.TimePenalty
	if err := finite(mode, "fuel_cost", sc.FuelCost); err != nil {
		return ShipmentCost{}, err
	}
	if err := finite(mode, "carbon_cost", sc.CarbonCost); err != nil {
		return ShipmentCost{}, err
	}
	if err := finite(mode, "time_penalty", sc.HoldingCost, sc.ServicePenalty, sc.TimePenalty); err != nil {
		return ShipmentCost{}, err
	}
	if err := finite(mode, "total", sc.Total); err != nil {
		return ShipmentCost{}, err
	}
	return sc, nil
}

// DemandWeightKg is the freight a city of the given population consumes per cycle.
func (c *CostModel) DemandWeightKg(population int64) (float64, error) {
	if population < 0 {
		return 0, fmt.Errorf("%w: population %d", ErrNegativeWeight, population)
	}
	return float64(population) * c.params.ConsumptionRate * c.params.AvgUnitWeightKg, nil
}

// finite fails with ErrCostOverflow if any value is infinite or NaN.
func finite(mode TransportMode, component string, values ...float64) error {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%w: %s %s", ErrCostOverflow, mode, component)
		}
	}
	return nil
}

func (c *CostModel) lookup(distanceKm float64, mode TransportMode, weightKg float64) (ModeParameters, error) {
	if !nonNegative(distanceKm) {
		return ModeParameters{}, fmt.Errorf("%w: %v", ErrNegativeDistance, distanceKm)
	}
	if !nonNegative(weightKg) {
		return ModeParameters{}, fmt.Errorf("%w: %v", ErrNegativeWeight, weightKg)
	}
	return c.params.Mode(mode)
}

func (c *CostModel) fuelCost(mp ModeParameters, distanceKm float64, mode TransportMode, weightKg float64) float64 {
	tonnes := weightKg / 1000
	if mode == ModeAir {
		overhead := c.params.AirTakeoffCost * (1 - math.Exp(-c.params.AirTakeoffDecay*distanceKm))
		return tonnes * (overhead + mp.CostPerTonneKm*distanceKm)
	}
	return mp.CostPerTonneKm * tonnes * distanceKm
}

func (c *CostModel) carbonCost(mp ModeParameters, distanceKm, weightKg float64) float64 {
	tonnes := weightKg / 1000
	emissionsKg := mp.CO2GramsPerTonneKm * tonnes * distanceKm / 1000
	return emissionsKg * c.params.CarbonCostPerKg
}

// timePenalty returns travel hours, holding cost and service penalty.
// The service penalty jumps from 0 to ServicePenaltyBase at the window boundary.
func (c *CostModel) timePenalty(mp ModeParameters, distanceKm, weightKg float64) (float64, float64, float64) {
	hours := distanceKm / mp.AvgSpeedKmh
	holding := hours * c.params.TimeValuePerKgHour * weightKg

	var service float64
	if hours > c.params.ServiceWindowHours {
		service = c.params.ServicePenaltyBase * math.Exp(c.params.ServicePenaltyRate*(hours-c.params.ServiceWindowHours))
	}
	return hours, holding, service
}
