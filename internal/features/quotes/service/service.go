package service

import (
	"context"
	"fmt"

	"freight-cost/internal/core/logger"
	"freight-cost/internal/core/metrics"
	costdomain "freight-cost/internal/features/costmodel/domain"
	distancedomain "freight-cost/internal/features/distance/domain"
	"freight-cost/internal/features/quotes/domain"
	"freight-cost/internal/features/quotes/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchConcurrency = 8
	defaultBatchMaxItems    = 1000
)

// QuoteServiceImpl implements ports.QuoteService.
type QuoteServiceImpl struct {
	snapshots   ports.SnapshotProvider
	costs       ports.CostEstimator
	concurrency int
	maxItems    int
}

// NewQuoteService creates a new QuoteServiceImpl. Non-positive limits fall back to defaults.
func NewQuoteService(snapshots ports.SnapshotProvider, costs ports.CostEstimator, concurrency, maxItems int) *QuoteServiceImpl {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	if maxItems <= 0 {
		maxItems = defaultBatchMaxItems
	}
	return &QuoteServiceImpl{
		snapshots:   snapshots,
		costs:       costs,
		concurrency: concurrency,
		maxItems:    maxItems,
	}
}

// Quote evaluates a single request.
func (s *QuoteServiceImpl) Quote(ctx context.Context, req domain.Request) (*domain.Quote, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	model, err := s.costs.Model(ctx, req.Scenario)
	if err != nil {
		return nil, err
	}

	q, err := s.evaluate(snap, model, req)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Batch evaluates many requests against one snapshot. Quotes come back in
// request order; the first failing request aborts the batch.
func (s *QuoteServiceImpl) Batch(ctx context.Context, reqs []domain.Request) ([]domain.Quote, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if len(reqs) > s.maxItems {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrBatchTooLarge, len(reqs), s.maxItems)
	}
	metrics.QuoteBatchSize.Observe(float64(len(reqs)))

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// Each scenario is resolved once so the fan-out below stays pure.
	models := make(map[string]*costdomain.CostModel)
	for _, req := range reqs {
		if _, ok := models[req.Scenario]; ok {
			continue
		}
		model, err := s.costs.Model(ctx, req.Scenario)
		if err != nil {
			return nil, err
		}
		models[req.Scenario] = model
	}

	quotes := make([]domain.Quote, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			q, err := s.evaluate(snap, models[req.Scenario], req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			quotes[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Named("quotes").Debug("Batch evaluated",
		zap.Int("requests", len(reqs)),
		zap.Int("scenarios", len(models)),
		zap.String("fingerprint", snap.Fingerprint),
	)
	return quotes, nil
}

func (s *QuoteServiceImpl) evaluate(snap *distancedomain.Snapshot, model *costdomain.CostModel, req domain.Request) (domain.Quote, error) {
	distance, err := snap.Matrix.Distance(req.OriginID, req.DestinationID)
	if err != nil {
		return domain.Quote{}, err
	}

	weight, basis, err := s.weight(snap, model, req)
	if err != nil {
		return domain.Quote{}, err
	}

	modes := req.Modes
	if len(modes) == 0 {
		modes = costdomain.AllModes()
	}

	costs, err := s.costs.EstimateWith(model, distance, modes, weight)
	if err != nil {
		return domain.Quote{}, err
	}

	return domain.Quote{
		OriginID:      req.OriginID,
		DestinationID: req.DestinationID,
		DistanceKm:    distance,
		WeightKg:      weight,
		WeightBasis:   basis,
		Scenario:      req.Scenario,
		Costs:         costs,
	}, nil
}

func (s *QuoteServiceImpl) weight(snap *distancedomain.Snapshot, model *costdomain.CostModel, req domain.Request) (float64, domain.WeightBasis, error) {
	if req.WeightKg != nil {
		return *req.WeightKg, domain.WeightExplicit, nil
	}

	dest, err := snap.Catalog.Find(req.DestinationID)
	if err != nil {
		return 0, "", err
	}
	w, err := model.DemandWeightKg(dest.Population)
	if err != nil {
		return 0, "", err
	}
	return w, domain.WeightDemand, nil
}
