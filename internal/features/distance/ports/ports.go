package ports

import (
	"context"

	citydomain "freight-cost/internal/features/cities/domain"
	"freight-cost/internal/features/distance/domain"
)

// CatalogProvider supplies the current city catalog the matrix is built from.
type CatalogProvider interface {
	Catalog(ctx context.Context) (*citydomain.Catalog, error)
}

// MatrixProvider returns the catalog and the distance matrix built from it.
type MatrixProvider interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}
