package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/app/analyze"
	"github.com/toxiguard/toxiguard/pkg/handlers/http/request"
	"github.com/toxiguard/toxiguard/pkg/handlers/http/response"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

type analyzeBatchHandler struct {
	logger           *logrus.Logger
	analyzer         analyze.Analyzer
	defaultThreshold float64
	maxBatchSize     int
}

// NewAnalyzeBatchHandler @Summary Analyze a batch of texts
// @Description Scores every text in the batch and returns per-text predictions plus aggregate statistics
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body request.AnalyzeBatchRequest true "Texts to analyze"
// @Success 200 {object} response.AnalyzeBatchOutput "Predictions and statistics"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/analyze/batch [post]
func NewAnalyzeBatchHandler(
	logger *logrus.Logger,
	analyzer analyze.Analyzer,
	defaultThreshold float64,
	maxBatchSize int,
) Handler {
	return &analyzeBatchHandler{
		logger:           logger,
		analyzer:         analyzer,
		defaultThreshold: defaultThreshold,
		maxBatchSize:     maxBatchSize,
	}
}

func (h *analyzeBatchHandler) Handle(c *fiber.Ctx) error {
	var req request.AnalyzeBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(h.maxBatchSize); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	results, err := h.analyzer.AnalyzeBatch(c.Context(), req.Texts, req.ThresholdOr(h.defaultThreshold))
	if err != nil {
		h.logger.WithError(err).Error("failed to analyze batch")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "analysis failed"})
	}

	recordAnalysisMetrics("api", results...)

	out := response.AnalyzeBatchOutput{Results: results}
	if req.WantStatistics() {
		stats := scoring.ComputeStatistics(results)
		out.Statistics = &stats
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
