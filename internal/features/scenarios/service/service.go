package service

import (
	"context"
	"fmt"

	"freight-cost/internal/core/logger"
	"freight-cost/internal/features/scenarios/domain"
	"freight-cost/internal/features/scenarios/ports"

	"go.uber.org/zap"
)

// ScenarioServiceImpl implements ports.ScenarioService.
type ScenarioServiceImpl struct {
	repo       ports.ScenarioRepository
	defaultTTL int
}

// NewScenarioService creates a new ScenarioServiceImpl.
// defaultTTL (seconds) applies to scenarios saved without a TTL; 0 keeps them until deleted.
func NewScenarioService(repo ports.ScenarioRepository, defaultTTL int) *ScenarioServiceImpl {
	return &ScenarioServiceImpl{
		repo:       repo,
		defaultTTL: defaultTTL,
	}
}

// SaveScenario validates and stores a scenario, replacing any previous one with the same name.
func (s *ScenarioServiceImpl) SaveScenario(ctx context.Context, name, description string, overrides domain.Overrides, ttlSeconds int) (*domain.Scenario, error) {
	if ttlSeconds == 0 {
		ttlSeconds = s.defaultTTL
	}

	scenario, err := domain.NewScenario(name, description, overrides, ttlSeconds)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, scenario); err != nil {
		return nil, fmt.Errorf("service: failed to save scenario: %w", err)
	}

	logger.Named("scenarios").Info("Scenario saved",
		zap.String("name", scenario.Name),
		zap.Int("ttl_seconds", scenario.TTLSeconds),
	)
	return scenario, nil
}

// GetScenario returns the scenario stored under name or domain.ErrScenarioNotFound.
func (s *ScenarioServiceImpl) GetScenario(ctx context.Context, name string) (*domain.Scenario, error) {
	scenario, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get scenario: %w", err)
	}
	if scenario == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrScenarioNotFound, name)
	}
	return scenario, nil
}

// RemoveScenario deletes a scenario or returns domain.ErrScenarioNotFound.
func (s *ScenarioServiceImpl) RemoveScenario(ctx context.Context, name string) error {
	ok, err := s.repo.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("service: failed to check scenario: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrScenarioNotFound, name)
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("service: failed to remove scenario: %w", err)
	}
	return nil
}
