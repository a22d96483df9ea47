package domain

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"time"

	costdomain "freight-cost/internal/features/costmodel/domain"
)

var (
	// ErrInvalidScenarioName is returned for names that are empty or not slug-like.
	ErrInvalidScenarioName = errors.New("invalid scenario name")
	// ErrInvalidOverride is returned for an override that would break the cost model.
	ErrInvalidOverride = errors.New("invalid parameter override")
	// ErrScenarioNotFound is returned when no scenario is stored under a name.
	ErrScenarioNotFound = errors.New("scenario not found")
)

var scenarioNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// ModeOverride replaces individual constants of one mode.
type ModeOverride struct {
	CostPerTonneKm     *float64 `json:"cost_per_tonne_km,omitempty"`
	CO2GramsPerTonneKm *float64 `json:"co2_grams_per_tonne_km,omitempty"`
	AvgSpeedKmh        *float64 `json:"avg_speed_kmh,omitempty"`
}

// Overrides replaces any subset of the cost model parameters. Nil fields keep the base value.
type Overrides struct {
	CarbonCostPerKg    *float64 `json:"carbon_cost_per_kg,omitempty"`
	TimeValuePerKgHour *float64 `json:"time_value_per_kg_hour,omitempty"`
	AvgUnitWeightKg    *float64 `json:"avg_unit_weight_kg,omitempty"`
	ConsumptionRate    *float64 `json:"consumption_rate,omitempty"`
	ReferenceWeightKg  *float64 `json:"reference_weight_kg,omitempty"`
	AirTakeoffCost     *float64 `json:"air_takeoff_cost,omitempty"`
	AirTakeoffDecay    *float64 `json:"air_takeoff_decay,omitempty"`
	ServiceWindowHours *float64 `json:"service_window_hours,omitempty"`
	ServicePenaltyBase *float64 `json:"service_penalty_base,omitempty"`
	ServicePenaltyRate *float64 `json:"service_penalty_rate,omitempty"`

	Modes map[costdomain.TransportMode]ModeOverride `json:"modes,omitempty"`
}

// Scenario is a named set of parameter overrides used for what-if analysis.
type Scenario struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Overrides   Overrides `json:"overrides"`
	TTLSeconds  int       `json:"ttl_seconds,omitempty"` // 0 means permanent (until manually deleted).
	CreatedAt   time.Time `json:"created_at"`
}

// NewScenario creates a new Scenario and validates it.
func NewScenario(name, description string, overrides Overrides, ttlSeconds int) (*Scenario, error) {
	if !scenarioNamePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScenarioName, name)
	}
	if ttlSeconds < 0 {
		return nil, fmt.Errorf("%w: ttl_seconds must not be negative", ErrInvalidOverride)
	}
	if err := overrides.Validate(); err != nil {
		return nil, err
	}

	return &Scenario{
		Name:        name,
		Description: description,
		Overrides:   overrides,
		TTLSeconds:  ttlSeconds,
		CreatedAt:   time.Now(),
	}, nil
}

// TTL returns the storage lifetime of the scenario.
func (s *Scenario) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}

// Validate rejects negative or non-finite values, non-positive speeds and unknown modes.
func (o Overrides) Validate() error {
	scalars := []struct {
		name  string
		value *float64
	}{
		{"carbon_cost_per_kg", o.CarbonCostPerKg},
		{"time_value_per_kg_hour", o.TimeValuePerKgHour},
		{"avg_unit_weight_kg", o.AvgUnitWeightKg},
		{"consumption_rate", o.ConsumptionRate},
		{"reference_weight_kg", o.ReferenceWeightKg},
		{"air_takeoff_cost", o.AirTakeoffCost},
		{"air_takeoff_decay", o.AirTakeoffDecay},
		{"service_window_hours", o.ServiceWindowHours},
		{"service_penalty_base", o.ServicePenaltyBase},
		{"service_penalty_rate", o.ServicePenaltyRate},
	}
	for _, sc := range scalars {
		if sc.value != nil && !usable(*sc.value) {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidOverride, sc.name)
		}
	}

	// Modes are checked in a fixed order so the reported mode is stable.
	modes := make([]costdomain.TransportMode, 0, len(o.Modes))
	for mode := range o.Modes {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })

	for _, mode := range modes {
		mo := o.Modes[mode]
		if !mode.IsValid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidOverride, costdomain.ErrUnknownMode, mode)
		}
		if mo.CostPerTonneKm != nil && !usable(*mo.CostPerTonneKm) {
			return fmt.Errorf("%w: %s cost_per_tonne_km must be a non-negative number", ErrInvalidOverride, mode)
		}
		if mo.CO2GramsPerTonneKm != nil && !usable(*mo.CO2GramsPerTonneKm) {
			return fmt.Errorf("%w: %s co2_grams_per_tonne_km must be a non-negative number", ErrInvalidOverride, mode)
		}
		if mo.AvgSpeedKmh != nil && (!usable(*mo.AvgSpeedKmh) || *mo.AvgSpeedKmh == 0) {
			return fmt.Errorf("%w: %s avg_speed_kmh must be positive", ErrInvalidOverride, mode)
		}
	}
	return nil
}

// Apply returns a copy of base with the overridden fields replaced.
func (o Overrides) Apply(base costdomain.Parameters) costdomain.Parameters {
	p := base.Clone()

	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.CarbonCostPerKg, o.CarbonCostPerKg)
	set(&p.TimeValuePerKgHour, o.TimeValuePerKgHour)
	set(&p.AvgUnitWeightKg, o.AvgUnitWeightKg)
	set(&p.ConsumptionRate, o.ConsumptionRate)
	set(&p.ReferenceWeightKg, o.ReferenceWeightKg)
	set(&p.AirTakeoffCost, o.AirTakeoffCost)
	set(&p.AirTakeoffDecay, o.AirTakeoffDecay)
	set(&p.ServiceWindowHours, o.ServiceWindowHours)
	set(&p.ServicePenaltyBase, o.ServicePenaltyBase)
	set(&p.ServicePenaltyRate, o.ServicePenaltyRate)

	for mode, mo := range o.Modes {
		mp := p.Modes[mode]
		set(&mp.CostPerTonneKm, mo.CostPerTonneKm)
		set(&mp.CO2GramsPerTonneKm, mo.CO2GramsPerTonneKm)
		set(&mp.AvgSpeedKmh, mo.AvgSpeedKmh)
		p.Modes[mode] = mp
	}
	return p
}

func usable(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
