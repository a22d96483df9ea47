package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight-cost/internal/core/response"
	"freight-cost/internal/features/cities/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCityService is a mock implementation of ports.CityService
type MockCityService struct {
	mock.Mock
}

func (m *MockCityService) ReplaceCatalog(ctx context.Context, cities []domain.City) (*domain.Catalog, error) {
	args := m.Called(ctx, cities)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

func (m *MockCityService) Catalog(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

func (m *MockCityService) GetCity(ctx context.Context, id int) (domain.City, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.City), args.Error(1)
}

func setupApp(service *MockCityService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	handler := NewCityHandler(service)
	app.Put("/cities", handler.ReplaceCities)
	app.Get("/cities", handler.ListCities)
	app.Get("/cities/:id", handler.GetCity)
	return app
}

func TestCityHandler_ReplaceCities(t *testing.T) {
	cities := []domain.City{{ID: 1, Name: "Delhi", Latitude: 28.7041, Longitude: 77.1025, Population: 100}}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCityService)
		app := setupApp(mockService)

		catalog, err := domain.NewCatalog(cities)
		require.NoError(t, err)
		mockService.On("ReplaceCatalog", mock.Anything, cities).Return(catalog, nil).Once()

		body, _ := json.Marshal(cities)
		req := httptest.NewRequest("PUT", "/cities", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result ReplaceCitiesResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, catalog.Fingerprint(), result.Fingerprint)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mockService := new(MockCityService)
		app := setupApp(mockService)

		req := httptest.NewRequest("PUT", "/cities", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ValidationError", func(t *testing.T) {
		mockService := new(MockCityService)
		app := setupApp(mockService)

		mockService.On("ReplaceCatalog", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: 1", domain.ErrDuplicateCityID)).Once()

		body, _ := json.Marshal(cities)
		req := httptest.NewRequest("PUT", "/cities", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errResp response.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Contains(t, errResp.Message, "duplicate city id")
		assert.Equal(t, "test-ray-id", errResp.RayID)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockCityService)
		app := setupApp(mockService)

		mockService.On("ReplaceCatalog", mock.Anything, mock.Anything).Return(nil, errors.New("redis down")).Once()

		body, _ := json.Marshal(cities)
		req := httptest.NewRequest("PUT", "/cities", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestCityHandler_ListCities(t *testing.T) {
	mockService := new(MockCityService)
	app := setupApp(mockService)

	catalog, err := domain.NewCatalog([]domain.City{{ID: 3, Name: "Pune"}})
	require.NoError(t, err)
	mockService.On("Catalog", mock.Anything).Return(catalog, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/cities", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.Catalog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, catalog.Cities, result.Cities)
}

func TestCityHandler_GetCity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCityService)
		app := setupApp(mockService)
		mockService.On("GetCity", mock.Anything, 3).Return(domain.City{ID: 3, Name: "Pune"}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/cities/3", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("BadID", func(t *testing.T) {
		mockService := new(MockCityService)
		app := setupApp(mockService)

		resp, err := app.Test(httptest.NewRequest("GET", "/cities/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockCityService)
		app := setupApp(mockService)
		mockService.On("GetCity", mock.Anything, 4).Return(domain.City{}, fmt.Errorf("%w: 4", domain.ErrCityNotFound)).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/cities/4", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
