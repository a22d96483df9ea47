package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"freight-cost/internal/core/cache"
	"freight-cost/internal/features/cities/domain"
)

const catalogCacheKey = "cities:catalog"

// RedisCityRepository implements ports.CityRepository by storing the whole catalog as one JSON document.
type RedisCityRepository struct {
	cache cache.Cache
}

// NewRedisCityRepository creates a new RedisCityRepository.
func NewRedisCityRepository(c cache.Cache) *RedisCityRepository {
	return &RedisCityRepository{
		cache: c,
	}
}

// Replace overwrites the stored catalog.
func (r *RedisCityRepository) Replace(ctx context.Context, catalog *domain.Catalog) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := r.cache.Set(ctx, catalogCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save catalog to cache: %w", err)
	}
	return nil
}

// Load retrieves the stored catalog.
func (r *RedisCityRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	data, err := r.cache.Get(ctx, catalogCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return &domain.Catalog{Cities: []domain.City{}}, nil
		}
		return nil, fmt.Errorf("failed to get catalog from cache: %w", err)
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	return &catalog, nil
}
