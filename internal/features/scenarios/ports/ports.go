package ports

import (
	"context"

	"freight-cost/internal/features/scenarios/domain"
)

// ScenarioService defines the primary port for scenario operations.
type ScenarioService interface {
	SaveScenario(ctx context.Context, name, description string, overrides domain.Overrides, ttlSeconds int) (*domain.Scenario, error)
	GetScenario(ctx context.Context, name string) (*domain.Scenario, error)
	RemoveScenario(ctx context.Context, name string) error
}

// ScenarioRepository defines the secondary port for scenario storage.
// Get returns nil, nil when no scenario is stored under name.
type ScenarioRepository interface {
	Save(ctx context.Context, scenario *domain.Scenario) error
	Get(ctx context.Context, name string) (*domain.Scenario, error)
	Exists(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, name string) error
}
