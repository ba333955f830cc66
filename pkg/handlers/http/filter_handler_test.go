package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	analyzeMocks "github.com/toxiguard/toxiguard/pkg/app/analyze/mocks"
	"github.com/toxiguard/toxiguard/pkg/handlers/http/response"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

func TestFilterHandler_Success(t *testing.T) {
	logger := logrus.New()
	analyzer := new(analyzeMocks.Analyzer)

	handler := NewFilterHandler(logger, analyzer, 0.5, 100)

	app := fiber.New()
	app.Post("/api/v1/analyze/filter", handler.Handle)

	texts := []string{"fine", "at threshold", "over threshold"}
	results := []scoring.Prediction{
		mustPrediction(t, texts[0], 0.1, 0.1, 0.5),
		mustPrediction(t, texts[1], 0.5, 0.5, 0.5),
		mustPrediction(t, texts[2], 0.9, 0.9, 0.5),
	}
	analyzer.On("AnalyzeBatch", mock.Anything, texts, 0.5).Return(results, nil)

	body, err := json.Marshal(map[string]interface{}{"texts": texts, "filter_type": "all"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/analyze/filter", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var got response.FilterOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 3, got.TotalAnalyzed)
	// The combined score exactly at the threshold is included.
	require.Equal(t, 2, got.TotalFiltered)
	assert.Equal(t, 1, got.FilteredResults[0].Index)
	assert.Equal(t, 2, got.FilteredResults[1].Index)
	assert.Equal(t, "all", got.FilterType)
}

func TestFilterHandler_DefaultsToAll(t *testing.T) {
	logger := logrus.New()
	analyzer := new(analyzeMocks.Analyzer)

	handler := NewFilterHandler(logger, analyzer, 0.5, 100)

	app := fiber.New()
	app.Post("/api/v1/analyze/filter", handler.Handle)

	texts := []string{"x"}
	analyzer.On("AnalyzeBatch", mock.Anything, texts, 0.5).
		Return([]scoring.Prediction{mustPrediction(t, "x", 0.1, 0.1, 0.5)}, nil)

	body, err := json.Marshal(map[string]interface{}{"texts": texts})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/analyze/filter", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var got response.FilterOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "all", got.FilterType)
	assert.Zero(t, got.TotalFiltered)
}

func TestFilterHandler_InvalidFilterType(t *testing.T) {
	logger := logrus.New()
	analyzer := new(analyzeMocks.Analyzer)

	handler := NewFilterHandler(logger, analyzer, 0.5, 100)

	app := fiber.New()
	app.Post("/api/v1/analyze/filter", handler.Handle)

	body, err := json.Marshal(map[string]interface{}{"texts": []string{"x"}, "filter_type": "spam"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/analyze/filter", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	analyzer.AssertNotCalled(t, "AnalyzeBatch", mock.Anything, mock.Anything, mock.Anything)
}
