package service

import (
	"context"
	"fmt"
	"time"

	"freight-cost/internal/core/logger"
	"freight-cost/internal/core/metrics"
	citydomain "freight-cost/internal/features/cities/domain"
	"freight-cost/internal/features/distance/domain"
	"freight-cost/internal/features/distance/ports"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultMatrixCacheSize = 8

// MatrixService hands out distance matrices, building each one once per
// catalog geometry and sharing it read-only afterwards.
type MatrixService struct {
	catalogs ports.CatalogProvider
	matrices *lru.Cache[string, *domain.Matrix]
	builds   singleflight.Group
}

// NewMatrixService creates a MatrixService keeping up to cacheSize matrices.
func NewMatrixService(catalogs ports.CatalogProvider, cacheSize int) (*MatrixService, error) {
	if cacheSize <= 0 {
		cacheSize = defaultMatrixCacheSize
	}
	matrices, err := lru.New[string, *domain.Matrix](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create matrix cache: %w", err)
	}

	return &MatrixService{
		catalogs: catalogs,
		matrices: matrices,
	}, nil
}

// Snapshot returns the current catalog together with its distance matrix.
func (s *MatrixService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	catalog, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load catalog: %w", err)
	}
	if catalog.Len() == 0 {
		return nil, citydomain.ErrEmptyCatalog
	}

	key := catalog.Fingerprint()
	if m, ok := s.matrices.Get(key); ok {
		metrics.RecordMatrixCache(true)
		return &domain.Snapshot{Catalog: catalog, Matrix: m, Fingerprint: key}, nil
	}
	metrics.RecordMatrixCache(false)

	v, err, _ := s.builds.Do(key, func() (interface{}, error) {
		if m, ok := s.matrices.Get(key); ok {
			return m, nil
		}

		start := time.Now()
		ids, lat, lng := catalog.Columns()
		m, err := domain.FromPoints(ids, lat, lng)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		metrics.RecordMatrixBuild(elapsed)
		logger.Named("distance").Info("Distance matrix built",
			zap.String("fingerprint", key),
			zap.Int("cities", m.Size()),
			zap.Duration("duration", elapsed),
		)

		s.matrices.Add(key, m)
		return m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to build distance matrix: %w", err)
	}

	return &domain.Snapshot{Catalog: catalog, Matrix: v.(*domain.Matrix), Fingerprint: key}, nil
}

// Distance returns the great-circle distance between two catalog cities.
func (s *MatrixService) Distance(ctx context.Context, originID, destinationID int) (float64, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.Matrix.Distance(originID, destinationID)
}
