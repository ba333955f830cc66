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

func TestAnalyzeBatchHandler_Success(t *testing.T) {
	logger := logrus.New()
	analyzer := new(analyzeMocks.Analyzer)

	handler := NewAnalyzeBatchHandler(logger, analyzer, 0.5, 100)

	app := fiber.New()
	app.Post("/api/v1/analyze/batch", handler.Handle)

	texts := []string{"great job", "you are worthless"}
	results := []scoring.Prediction{
		mustPrediction(t, texts[0], 0.0, 0.0, 0.5),
		mustPrediction(t, texts[1], 0.95, 0.1, 0.5),
	}
	analyzer.On("AnalyzeBatch", mock.Anything, texts, 0.5).Return(results, nil)

	body, err := json.Marshal(map[string]interface{}{"texts": texts})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/analyze/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var got response.AnalyzeBatchOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Results, 2)
	require.NotNil(t, got.Statistics)
	assert.Equal(t, 2, got.Statistics.TotalComments)
	assert.Equal(t, 1, got.Statistics.ToxicComments)
	assert.Equal(t, 1, got.Statistics.SafeComments)
	assert.Len(t, got.Statistics.RiskDistribution, 4)
}

func TestAnalyzeBatchHandler_StatisticsDisabled(t *testing.T) {
	logger := logrus.New()
	analyzer := new(analyzeMocks.Analyzer)

	handler := NewAnalyzeBatchHandler(logger, analyzer, 0.5, 100)

	app := fiber.New()
	app.Post("/api/v1/analyze/batch", handler.Handle)

	texts := []string{"hello"}
	analyzer.On("AnalyzeBatch", mock.Anything, texts, 0.5).
		Return([]scoring.Prediction{mustPrediction(t, "hello", 0.1, 0.1, 0.5)}, nil)

	body, err := json.Marshal(map[string]interface{}{"texts": texts, "include_statistics": false})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/analyze/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var got response.AnalyzeBatchOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Results, 1)
	assert.Nil(t, got.Statistics)
}

func TestAnalyzeBatchHandler_EmptyTexts(t *testing.T) {
	logger := logrus.New()
	analyzer := new(analyzeMocks.Analyzer)

	handler := NewAnalyzeBatchHandler(logger, analyzer, 0.5, 100)

	app := fiber.New()
	app.Post("/api/v1/analyze/batch", handler.Handle)

	body, err := json.Marshal(map[string]interface{}{"texts": []string{}})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/analyze/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	analyzer.AssertNotCalled(t, "AnalyzeBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeBatchHandler_TooManyTexts(t *testing.T) {
	logger := logrus.New()
	analyzer := new(analyzeMocks.Analyzer)

	handler := NewAnalyzeBatchHandler(logger, analyzer, 0.5, 2)

	app := fiber.New()
	app.Post("/api/v1/analyze/batch", handler.Handle)

	body, err := json.Marshal(map[string]interface{}{"texts": []string{"a", "b", "c"}})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/analyze/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
