package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidParameters is returned when a parameter set cannot drive the cost model.
var ErrInvalidParameters = errors.New("invalid cost model parameters")

// ModeParameters holds the constants that parameterize a single transport mode.
type ModeParameters struct {
	// CostPerTonneKm is the transport cost in currency per tonne-km.
	CostPerTonneKm float64 `json:"cost_per_tonne_km"`
	// CO2GramsPerTonneKm is the emission factor in grams of CO2 per tonne-km.
	CO2GramsPerTonneKm float64 `json:"co2_grams_per_tonne_km"`
	// AvgSpeedKmh is the door-to-door average speed including transshipment.
	AvgSpeedKmh float64 `json:"avg_speed_kmh"`
}

// Parameters is the full, injectable configuration of the cost model.
type Parameters struct {
	// Modes maps every TransportMode to its constants.
	Modes map[TransportMode]ModeParameters `json:"modes"`

	// CarbonCostPerKg is the monetized price of one kg of CO2.
	CarbonCostPerKg float64 `json:"carbon_cost_per_kg"`
	// TimeValuePerKgHour is the holding cost of one kg of freight in transit for one hour.
	TimeValuePerKgHour float64 `json:"time_value_per_kg_hour"`
	// AvgUnitWeightKg is the weight of one demand unit (a typical parcel).
	AvgUnitWeightKg float64 `json:"avg_unit_weight_kg"`
	// ConsumptionRate is the number of demand units per inhabitant.
	ConsumptionRate float64 `json:"consumption_rate"`
	// ReferenceWeightKg is the shipment weight used when comparing modes without a parcel.
	ReferenceWeightKg float64 `json:"reference_weight_kg"`

	// AirTakeoffCost is the saturating takeoff/landing overhead per tonne.
	AirTakeoffCost float64 `json:"air_takeoff_cost"`
	// AirTakeoffDecay is the per-km rate at which the overhead saturates.
	AirTakeoffDecay float64 `json:"air_takeoff_decay"`

	// ServiceWindowHours is the committed delivery window.
	ServiceWindowHours float64 `json:"service_window_hours"`
	// ServicePenaltyBase is the penalty charged as soon as the window is exceeded.
	ServicePenaltyBase float64 `json:"service_penalty_base"`
	// ServicePenaltyRate is the exponential growth rate per hour past the window.
	ServicePenaltyRate float64 `json:"service_penalty_rate"`
}

// Placeholder calibration; not fitted to real-world data.
const (
	DefaultCarbonCostPerKg    = 5.0
	DefaultTimeValuePerKgHour = 2.0
	DefaultAvgUnitWeightKg    = 2.5
	DefaultConsumptionRate    = 0.05
	DefaultReferenceWeightKg  = 1000.0
	DefaultAirTakeoffCost     = 6500.0
	DefaultAirTakeoffDecay    = 0.008
	DefaultServiceWindowHours = 48.0
	DefaultServicePenaltyBase = 1000.0
	DefaultServicePenaltyRate = 0.04
)

// DefaultModeParameters returns the baseline per-mode table (INR, Indian freight averages).
func DefaultModeParameters() map[TransportMode]ModeParameters {
	return map[TransportMode]ModeParameters{
		ModeRoad: {CostPerTonneKm: 3.6, CO2GramsPerTonneKm: 101, AvgSpeedKmh: 30},
		ModeRail: {CostPerTonneKm: 1.6, CO2GramsPerTonneKm: 11.5, AvgSpeedKmh: 35},
		ModeAir:  {CostPerTonneKm: 18, CO2GramsPerTonneKm: 610, AvgSpeedKmh: 450},
	}
}

// DefaultParameters returns the baseline parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		Modes:              DefaultModeParameters(),
		CarbonCostPerKg:    DefaultCarbonCostPerKg,
		TimeValuePerKgHour: DefaultTimeValuePerKgHour,
		AvgUnitWeightKg:    DefaultAvgUnitWeightKg,
		ConsumptionRate:    DefaultConsumptionRate,
		ReferenceWeightKg:  DefaultReferenceWeightKg,
		AirTakeoffCost:     DefaultAirTakeoffCost,
		AirTakeoffDecay:    DefaultAirTakeoffDecay,
		ServiceWindowHours: DefaultServiceWindowHours,
		ServicePenaltyBase: DefaultServicePenaltyBase,
		ServicePenaltyRate: DefaultServicePenaltyRate,
	}
}

// Clone returns a deep copy so callers can mutate the mode table safely.
func (p Parameters) Clone() Parameters {
	out := p
	out.Modes = make(map[TransportMode]ModeParameters, len(p.Modes))
	for m, mp := range p.Modes {
		out.Modes[m] = mp
	}
	return out
}

// Mode returns the constants registered for m.
func (p Parameters) Mode(m TransportMode) (ModeParameters, error) {
	mp, ok := p.Modes[m]
	if !ok {
		return ModeParameters{}, fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	return mp, nil
}

// Validate checks that every mode is present and every constant is usable.
func (p Parameters) Validate() error {
	for _, m := range AllModes() {
		mp, ok := p.Modes[m]
		if !ok {
			return fmt.Errorf("%w: no entry for mode %q", ErrInvalidParameters, m)
		}
		if !nonNegative(mp.CostPerTonneKm) || !nonNegative(mp.CO2GramsPerTonneKm) {
			return fmt.Errorf("%w: negative rate for mode %q", ErrInvalidParameters, m)
		}
		if !(mp.AvgSpeedKmh > 0) || math.IsInf(mp.AvgSpeedKmh, 0) {
			return fmt.Errorf("%w: speed for mode %q must be positive", ErrInvalidParameters, m)
		}
	}
	var unknown []string
	for m := range p.Modes {
		if !m.IsValid() {
			unknown = append(unknown, string(m))
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %q", ErrUnknownMode, unknown[0])
	}

	scalars := []struct {
		name  string
		value float64
	}{
		{"carbon_cost_per_kg", p.CarbonCostPerKg},
		{"time_value_per_kg_hour", p.TimeValuePerKgHour},
		{"avg_unit_weight_kg", p.AvgUnitWeightKg},
		{"consumption_rate", p.ConsumptionRate},
		{"reference_weight_kg", p.ReferenceWeightKg},
		{"air_takeoff_cost", p.AirTakeoffCost},
		{"air_takeoff_decay", p.AirTakeoffDecay},
		{"service_window_hours", p.ServiceWindowHours},
		{"service_penalty_base", p.ServicePenaltyBase},
		{"service_penalty_rate", p.ServicePenaltyRate},
	}
	for _, sc := range scalars {
		if !nonNegative(sc.value) {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidParameters, sc.name)
		}
	}
	return nil
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
