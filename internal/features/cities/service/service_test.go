package service

import (
	"context"
	"errors"
	"testing"

	"freight-cost/internal/features/cities/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCityRepository is a mock implementation of ports.CityRepository
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) Replace(ctx context.Context, catalog *domain.Catalog) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}

func (m *MockCityRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

func TestCityService_ReplaceCatalog(t *testing.T) {
	ctx := context.Background()
	cities := []domain.City{
		{ID: 2, Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
		{ID: 1, Name: "Delhi", Latitude: 28.7041, Longitude: 77.1025},
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCityRepository)
		service := NewCityService(mockRepo)

		mockRepo.On("Replace", ctx, mock.AnythingOfType("*domain.Catalog")).Return(nil).Once()

		catalog, err := service.ReplaceCatalog(ctx, cities)
		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Cities[0].ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("InvalidCity", func(t *testing.T) {
		mockRepo := new(MockCityRepository)
		service := NewCityService(mockRepo)

		_, err := service.ReplaceCatalog(ctx, []domain.City{{ID: 1, Latitude: 120}})
		assert.ErrorIs(t, err, domain.ErrInvalidCity)
		mockRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockCityRepository)
		service := NewCityService(mockRepo)

		mockRepo.On("Replace", ctx, mock.AnythingOfType("*domain.Catalog")).Return(errors.New("db error")).Once()

		_, err := service.ReplaceCatalog(ctx, cities)
		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCityService_GetCity(t *testing.T) {
	ctx := context.Background()
	catalog, err := domain.NewCatalog([]domain.City{{ID: 5, Name: "Chennai", Latitude: 13.0827, Longitude: 80.2707}})
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(MockCityRepository)
		service := NewCityService(mockRepo)
		mockRepo.On("Load", ctx).Return(catalog, nil).Once()

		city, err := service.GetCity(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Chennai", city.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockCityRepository)
		service := NewCityService(mockRepo)
		mockRepo.On("Load", ctx).Return(catalog, nil).Once()

		_, err := service.GetCity(ctx, 6)
		assert.ErrorIs(t, err, domain.ErrCityNotFound)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockCityRepository)
		service := NewCityService(mockRepo)
		mockRepo.On("Load", ctx).Return(nil, errors.New("db error")).Once()

		_, err := service.GetCity(ctx, 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load catalog")
	})
}
