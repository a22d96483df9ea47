package service

import (
	"context"
	"errors"
	"testing"

	"freight-cost/internal/core/config"
	"freight-cost/internal/core/metrics"
	"freight-cost/internal/features/costmodel/domain"
	scenariodomain "freight-cost/internal/features/scenarios/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockScenarioProvider is a mock implementation of ports.ScenarioProvider
type MockScenarioProvider struct {
	mock.Mock
}

func (m *MockScenarioProvider) GetScenario(ctx context.Context, name string) (*scenariodomain.Scenario, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scenariodomain.Scenario), args.Error(1)
}

func defaultCostModelConfig() config.CostModelConfig {
	return config.CostModelConfig{
		CarbonCostPerKg:        5.0,
		TimeValuePerKgHour:     2.0,
		AvgUnitWeightKg:        2.5,
		ConsumptionRate:        0.05,
		ReferenceWeightKg:      1000,
		AirTakeoffCost:         6500,
		AirTakeoffDecay:        0.008,
		ServiceWindowHours:     48,
		ServicePenaltyBase:     1000,
		ServicePenaltyRate:     0.04,
		RoadCostPerTonneKm:     3.6,
		RoadCO2GramsPerTonneKm: 101,
		RoadAvgSpeedKmh:        30,
		RailCostPerTonneKm:     1.6,
		RailCO2GramsPerTonneKm: 11.5,
		RailAvgSpeedKmh:        35,
		AirCostPerTonneKm:      18,
		AirCO2GramsPerTonneKm:  610,
		AirAvgSpeedKmh:         450,
	}
}

func TestParametersFromConfig(t *testing.T) {
	params := ParametersFromConfig(defaultCostModelConfig())

	assert.Equal(t, domain.DefaultParameters(), params)
	assert.NoError(t, params.Validate())
}

func TestCostService_ModelBase(t *testing.T) {
	svc, err := NewCostService(domain.DefaultParameters(), nil)
	require.NoError(t, err)

	model, err := svc.Model(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultParameters(), model.Parameters())
}

func TestCostService_InvalidBase(t *testing.T) {
	params := domain.DefaultParameters()
	params.CarbonCostPerKg = -1

	_, err := NewCostService(params, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestCostService_ModelScenario(t *testing.T) {
	ctx := context.Background()
	provider := new(MockScenarioProvider)
	svc, err := NewCostService(domain.DefaultParameters(), provider)
	require.NoError(t, err)

	zero := 0.0
	provider.On("GetScenario", ctx, "free-carbon").Return(&scenariodomain.Scenario{
		Name:      "free-carbon",
		Overrides: scenariodomain.Overrides{CarbonCostPerKg: &zero},
	}, nil).Once()

	costs, err := svc.Estimate(ctx, "free-carbon", 1150, []domain.TransportMode{domain.ModeRoad}, 1000)
	require.NoError(t, err)
	require.Len(t, costs, 1)
	assert.Zero(t, costs[0].CarbonCost)
	assert.InDelta(t, 4140.0, costs[0].FuelCost, 1e-9)

	// The base model is not affected by the scenario.
	base, err := svc.Model(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCarbonCostPerKg, base.Parameters().CarbonCostPerKg)
	provider.AssertExpectations(t)
}

func TestCostService_ScenarioNotFound(t *testing.T) {
	ctx := context.Background()
	provider := new(MockScenarioProvider)
	svc, err := NewCostService(domain.DefaultParameters(), provider)
	require.NoError(t, err)

	provider.On("GetScenario", ctx, "missing").Return(nil, scenariodomain.ErrScenarioNotFound).Once()

	_, err = svc.Model(ctx, "missing")
	assert.ErrorIs(t, err, scenariodomain.ErrScenarioNotFound)
}

func TestCostService_EstimateOrderAndMetrics(t *testing.T) {
	svc, err := NewCostService(domain.DefaultParameters(), nil)
	require.NoError(t, err)

	okBefore := testutil.ToFloat64(metrics.CostEvaluationsTotal.WithLabelValues("rail", "ok"))

	modes := []domain.TransportMode{domain.ModeAir, domain.ModeRail}
	costs, err := svc.Estimate(context.Background(), "", 500, modes, 200)
	require.NoError(t, err)
	require.Len(t, costs, 2)
	assert.Equal(t, domain.ModeAir, costs[0].Mode)
	assert.Equal(t, domain.ModeRail, costs[1].Mode)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.CostEvaluationsTotal.WithLabelValues("rail", "ok")))
}

func TestCostService_EstimateErrors(t *testing.T) {
	svc, err := NewCostService(domain.DefaultParameters(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	errBefore := testutil.ToFloat64(metrics.CostEvaluationsTotal.WithLabelValues("unknown", "error"))

	_, err = svc.Estimate(ctx, "", 100, []domain.TransportMode{"sea"}, 10)
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.CostEvaluationsTotal.WithLabelValues("unknown", "error")))

	_, err = svc.Estimate(ctx, "", -1, domain.AllModes(), 10)
	assert.ErrorIs(t, err, domain.ErrNegativeDistance)

	_, err = svc.Estimate(ctx, "any", 1, domain.AllModes(), 10)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnknownMode))
}
