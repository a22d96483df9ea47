package ports

import (
	"context"

	"freight-cost/internal/features/cities/domain"
)

// CityService defines the primary port for catalog operations.
type CityService interface {
	ReplaceCatalog(ctx context.Context, cities []domain.City) (*domain.Catalog, error)
	Catalog(ctx context.Context) (*domain.Catalog, error)
	GetCity(ctx context.Context, id int) (domain.City, error)
}

// CityRepository defines the secondary port for catalog storage.
// Load returns an empty catalog, not an error, when nothing has been stored.
type CityRepository interface {
	Replace(ctx context.Context, catalog *domain.Catalog) error
	Load(ctx context.Context) (*domain.Catalog, error)
}
