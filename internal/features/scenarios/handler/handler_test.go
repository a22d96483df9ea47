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
	"freight-cost/internal/features/scenarios/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockScenarioService is a mock implementation of ports.ScenarioService
type MockScenarioService struct {
	mock.Mock
}

func (m *MockScenarioService) SaveScenario(ctx context.Context, name, description string, overrides domain.Overrides, ttlSeconds int) (*domain.Scenario, error) {
	args := m.Called(ctx, name, description, overrides, ttlSeconds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockScenarioService) GetScenario(ctx context.Context, name string) (*domain.Scenario, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockScenarioService) RemoveScenario(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func setupApp(service *MockScenarioService) *fiber.App {
	app := fiber.New()
	handler := NewScenarioHandler(service)
	app.Put("/scenarios/:name", handler.SaveScenario)
	app.Get("/scenarios/:name", handler.GetScenario)
	app.Delete("/scenarios/:name", handler.RemoveScenario)
	return app
}

func putScenario(t *testing.T, app *fiber.App, name string, body []byte) *http.Response {
	t.Helper()
	req := httptest.NewRequest("PUT", "/scenarios/"+name, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestScenarioHandler_SaveScenario(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		carbon := 0.05
		reqBody := SaveScenarioRequest{
			Description: "cheap carbon",
			Overrides:   domain.Overrides{CarbonCostPerKg: &carbon},
			TTLSeconds:  60,
		}
		body, _ := json.Marshal(reqBody)

		mockService.On("SaveScenario", mock.Anything, "carbon-low", "cheap carbon", mock.MatchedBy(func(o domain.Overrides) bool {
			return o.CarbonCostPerKg != nil && *o.CarbonCostPerKg == carbon
		}), 60).Return(&domain.Scenario{Name: "carbon-low", Description: "cheap carbon"}, nil).Once()

		resp := putScenario(t, app, "carbon-low", body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got domain.Scenario
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "carbon-low", got.Name)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidOverride", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		mockService.On("SaveScenario", mock.Anything, "bad", "", mock.Anything, 0).
			Return(nil, fmt.Errorf("%w: carbon_cost_per_kg must be a non-negative number", domain.ErrInvalidOverride)).Once()

		resp := putScenario(t, app, "bad", []byte(`{"overrides":{"carbon_cost_per_kg":-1}}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var got response.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Contains(t, got.Message, "carbon_cost_per_kg")
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		resp := putScenario(t, app, "x", []byte(`{invalid`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "SaveScenario")
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		mockService.On("SaveScenario", mock.Anything, "x", "", mock.Anything, 0).Return(nil, errors.New("db error")).Once()

		resp := putScenario(t, app, "x", []byte(`{}`))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestScenarioHandler_GetScenario(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		mockService.On("GetScenario", mock.Anything, "found").Return(&domain.Scenario{Name: "found"}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/scenarios/found", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		mockService.On("GetScenario", mock.Anything, "missing").Return(nil, domain.ErrScenarioNotFound).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/scenarios/missing", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		mockService.On("GetScenario", mock.Anything, "broken").Return(nil, errors.New("db error")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/scenarios/broken", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestScenarioHandler_RemoveScenario(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		mockService.On("RemoveScenario", mock.Anything, "gone").Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/scenarios/gone", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		mockService.On("RemoveScenario", mock.Anything, "gone").Return(errors.New("db error")).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/scenarios/gone", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockScenarioService)
		app := setupApp(mockService)

		mockService.On("RemoveScenario", mock.Anything, "missing").
			Return(fmt.Errorf("%w: %q", domain.ErrScenarioNotFound, "missing")).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/scenarios/missing", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}
