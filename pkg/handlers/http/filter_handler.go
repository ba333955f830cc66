package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/app/analyze"
	"github.com/toxiguard/toxiguard/pkg/handlers/http/request"
	"github.com/toxiguard/toxiguard/pkg/handlers/http/response"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

type filterHandler struct {
	logger           *logrus.Logger
	analyzer         analyze.Analyzer
	defaultThreshold float64
	maxBatchSize     int
}

// NewFilterHandler @Summary Filter toxic texts out of a batch
// @Description Analyzes the batch and returns only the texts whose relevant score meets the threshold
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body request.FilterRequest true "Texts and filter settings"
// @Success 200 {object} response.FilterOutput "Filtered predictions"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/analyze/filter [post]
func NewFilterHandler(
	logger *logrus.Logger,
	analyzer analyze.Analyzer,
	defaultThreshold float64,
	maxBatchSize int,
) Handler {
	return &filterHandler{
		logger:           logger,
		analyzer:         analyzer,
		defaultThreshold: defaultThreshold,
		maxBatchSize:     maxBatchSize,
	}
}

func (h *filterHandler) Handle(c *fiber.Ctx) error {
	var req request.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(h.maxBatchSize); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	threshold := req.ThresholdOr(h.defaultThreshold)
	results, err := h.analyzer.AnalyzeBatch(c.Context(), req.Texts, threshold)
	if err != nil {
		h.logger.WithError(err).Error("failed to analyze batch for filtering")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "analysis failed"})
	}

	filtered, err := scoring.Filter(results, threshold, req.Mode())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	recordAnalysisMetrics("api", results...)
	return c.Status(fiber.StatusOK).JSON(response.FilterOutput{
		FilteredResults: filtered,
		TotalAnalyzed:   len(results),
		TotalFiltered:   len(filtered),
		Threshold:       threshold,
		FilterType:      string(req.Mode()),
	})
}
