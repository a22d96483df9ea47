package ports

import (
	"context"

	"freight-cost/internal/features/costmodel/domain"
	scenariodomain "freight-cost/internal/features/scenarios/domain"
)

// CostService resolves cost models and evaluates shipments.
// An empty scenario name selects the configured base model.
type CostService interface {
	Model(ctx context.Context, scenario string) (*domain.CostModel, error)
	Estimate(ctx context.Context, scenario string, distanceKm float64, modes []domain.TransportMode, weightKg float64) ([]domain.ShipmentCost, error)
	EstimateWith(model *domain.CostModel, distanceKm float64, modes []domain.TransportMode, weightKg float64) ([]domain.ShipmentCost, error)
}

// ScenarioProvider looks up stored what-if scenarios.
type ScenarioProvider interface {
	GetScenario(ctx context.Context, name string) (*scenariodomain.Scenario, error)
}
