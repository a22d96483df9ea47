package service

import (
	"context"
	"fmt"

	"freight-cost/internal/core/config"
	"freight-cost/internal/core/metrics"
	"freight-cost/internal/features/costmodel/domain"
	"freight-cost/internal/features/costmodel/ports"
)

// CostServiceImpl implements ports.CostService.
type CostServiceImpl struct {
	base      *domain.CostModel
	scenarios ports.ScenarioProvider
}

// NewCostService creates a CostServiceImpl around the base parameters.
func NewCostService(params domain.Parameters, scenarios ports.ScenarioProvider) (*CostServiceImpl, error) {
	base, err := domain.NewCostModel(params)
	if err != nil {
		return nil, err
	}
	return &CostServiceImpl{
		base:      base,
		scenarios: scenarios,
	}, nil
}

// ParametersFromConfig maps the configured economic constants onto model parameters.
func ParametersFromConfig(cfg config.CostModelConfig) domain.Parameters {
	return domain.Parameters{
		Modes: map[domain.TransportMode]domain.ModeParameters{
			domain.ModeRoad: {
				CostPerTonneKm:     cfg.RoadCostPerTonneKm,
				CO2GramsPerTonneKm: cfg.RoadCO2GramsPerTonneKm,
				AvgSpeedKmh:        cfg.RoadAvgSpeedKmh,
			},
			domain.ModeRail: {
				CostPerTonneKm:     cfg.RailCostPerTonneKm,
				CO2GramsPerTonneKm: cfg.RailCO2GramsPerTonneKm,
				AvgSpeedKmh:        cfg.RailAvgSpeedKmh,
			},
			domain.ModeAir: {
				CostPerTonneKm:     cfg.AirCostPerTonneKm,
				CO2GramsPerTonneKm: cfg.AirCO2GramsPerTonneKm,
				AvgSpeedKmh:        cfg.AirAvgSpeedKmh,
			},
		},
		CarbonCostPerKg:    cfg.CarbonCostPerKg,
		TimeValuePerKgHour: cfg.TimeValuePerKgHour,
		AvgUnitWeightKg:    cfg.AvgUnitWeightKg,
		ConsumptionRate:    cfg.ConsumptionRate,
		ReferenceWeightKg:  cfg.ReferenceWeightKg,
		AirTakeoffCost:     cfg.AirTakeoffCost,
		AirTakeoffDecay:    cfg.AirTakeoffDecay,
		ServiceWindowHours: cfg.ServiceWindowHours,
		ServicePenaltyBase: cfg.ServicePenaltyBase,
		ServicePenaltyRate: cfg.ServicePenaltyRate,
	}
}

// Model returns the base model, or the base with a stored scenario's overrides applied.
func (s *CostServiceImpl) Model(ctx context.Context, scenario string) (*domain.CostModel, error) {
	if scenario == "" {
		return s.base, nil
	}
	if s.scenarios == nil {
		return nil, fmt.Errorf("service: scenarios are not configured")
	}

	sc, err := s.scenarios.GetScenario(ctx, scenario)
	if err != nil {
		return nil, err
	}

	model, err := domain.NewCostModel(sc.Overrides.Apply(s.base.Parameters()))
	if err != nil {
		return nil, fmt.Errorf("service: scenario %q: %w", scenario, err)
	}
	return model, nil
}

// Estimate evaluates every requested mode under the named scenario.
func (s *CostServiceImpl) Estimate(ctx context.Context, scenario string, distanceKm float64, modes []domain.TransportMode, weightKg float64) ([]domain.ShipmentCost, error) {
	model, err := s.Model(ctx, scenario)
	if err != nil {
		return nil, err
	}
	return s.EstimateWith(model, distanceKm, modes, weightKg)
}

// EstimateWith evaluates every requested mode with an already resolved model.
// Costs are returned in the order of modes.
func (s *CostServiceImpl) EstimateWith(model *domain.CostModel, distanceKm float64, modes []domain.TransportMode, weightKg float64) ([]domain.ShipmentCost, error) {
	costs := make([]domain.ShipmentCost, 0, len(modes))
	for _, mode := range modes {
		cost, err := model.Evaluate(distanceKm, mode, weightKg)
		metrics.RecordEvaluation(modeLabel(mode), err)
		if err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}
	return costs, nil
}

func modeLabel(m domain.TransportMode) string {
	if !m.IsValid() {
		return "unknown"
	}
	return string(m)
}
