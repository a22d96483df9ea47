package ports

import (
	"context"

	costdomain "freight-cost/internal/features/costmodel/domain"
	distancedomain "freight-cost/internal/features/distance/domain"
	"freight-cost/internal/features/quotes/domain"
)

// QuoteService defines the primary port for quotes.
type QuoteService interface {
	Quote(ctx context.Context, req domain.Request) (*domain.Quote, error)
	Batch(ctx context.Context, reqs []domain.Request) ([]domain.Quote, error)
}

// SnapshotProvider supplies the current catalog and its distance matrix.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*distancedomain.Snapshot, error)
}

// CostEstimator resolves cost models and evaluates modes with them.
type CostEstimator interface {
	Model(ctx context.Context, scenario string) (*costdomain.CostModel, error)
	EstimateWith(model *costdomain.CostModel, distanceKm float64, modes []costdomain.TransportMode, weightKg float64) ([]costdomain.ShipmentCost, error)
}
