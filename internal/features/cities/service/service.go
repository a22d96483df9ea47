package service

import (
	"context"
	"fmt"

	"freight-cost/internal/core/logger"
	"freight-cost/internal/features/cities/domain"
	"freight-cost/internal/features/cities/ports"

	"go.uber.org/zap"
)

// CityServiceImpl implements ports.CityService.
type CityServiceImpl struct {
	repo ports.CityRepository
}

// NewCityService creates a new CityServiceImpl.
func NewCityService(repo ports.CityRepository) *CityServiceImpl {
	return &CityServiceImpl{
		repo: repo,
	}
}

// ReplaceCatalog validates the records and stores them as the new catalog.
func (s *CityServiceImpl) ReplaceCatalog(ctx context.Context, cities []domain.City) (*domain.Catalog, error) {
	catalog, err := domain.NewCatalog(cities)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, catalog); err != nil {
		return nil, fmt.Errorf("service: failed to replace catalog: %w", err)
	}

	logger.Named("cities").Info("City catalog replaced",
		zap.Int("cities", catalog.Len()),
		zap.String("fingerprint", catalog.Fingerprint()),
	)
	return catalog, nil
}

// Catalog returns the stored catalog.
func (s *CityServiceImpl) Catalog(ctx context.Context) (*domain.Catalog, error) {
	catalog, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load catalog: %w", err)
	}
	return catalog, nil
}

// GetCity returns one record of the stored catalog.
func (s *CityServiceImpl) GetCity(ctx context.Context, id int) (domain.City, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return domain.City{}, err
	}
	return catalog.Find(id)
}
