package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"freight-cost/internal/core/cache"
	"freight-cost/internal/features/scenarios/domain"
)

const scenarioKeyPrefix = "scenario:"

// RedisScenarioRepository implements ports.ScenarioRepository using the cache adaptation.
type RedisScenarioRepository struct {
	cache cache.Cache
}

// NewRedisScenarioRepository creates a new RedisScenarioRepository.
func NewRedisScenarioRepository(c cache.Cache) *RedisScenarioRepository {
	return &RedisScenarioRepository{
		cache: c,
	}
}

// Save stores the scenario. A zero TTL keeps it until deleted.
func (r *RedisScenarioRepository) Save(ctx context.Context, scenario *domain.Scenario) error {
	data, err := json.Marshal(scenario)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	if err := r.cache.Set(ctx, scenarioKeyPrefix+scenario.Name, data, scenario.TTL()); err != nil {
		return fmt.Errorf("failed to save scenario to cache: %w", err)
	}
	return nil
}

// Get retrieves a scenario by name.
func (r *RedisScenarioRepository) Get(ctx context.Context, name string) (*domain.Scenario, error) {
	data, err := r.cache.Get(ctx, scenarioKeyPrefix+name)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scenario from cache: %w", err)
	}

	var scenario domain.Scenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	return &scenario, nil
}

// Exists reports whether a scenario is stored under name.
func (r *RedisScenarioRepository) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := r.cache.Exists(ctx, scenarioKeyPrefix+name)
	if err != nil {
		return false, fmt.Errorf("failed to check scenario in cache: %w", err)
	}
	return ok, nil
}

// Delete removes a scenario by name.
func (r *RedisScenarioRepository) Delete(ctx context.Context, name string) error {
	if err := r.cache.Delete(ctx, scenarioKeyPrefix+name); err != nil {
		return fmt.Errorf("failed to delete scenario from cache: %w", err)
	}
	return nil
}
