package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/app/analyze"
	"github.com/toxiguard/toxiguard/pkg/handlers/http/request"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

type analyzeHandler struct {
	logger           *logrus.Logger
	analyzer         analyze.Analyzer
	defaultThreshold float64
}

// NewAnalyzeHandler @Summary Analyze a single text
// @Description Scores a text for harassment and misogyny and returns the combined prediction
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body request.AnalyzeRequest true "Text to analyze"
// @Success 200 {object} scoring.Prediction "Prediction"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/analyze [post]
func NewAnalyzeHandler(logger *logrus.Logger, analyzer analyze.Analyzer, defaultThreshold float64) Handler {
	return &analyzeHandler{
		logger:           logger,
		analyzer:         analyzer,
		defaultThreshold: defaultThreshold,
	}
}

func (h *analyzeHandler) Handle(c *fiber.Ctx) error {
	var req request.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	prediction, err := h.analyzer.AnalyzeText(c.Context(), req.Text, req.ThresholdOr(h.defaultThreshold))
	if err != nil {
		var scoreErr *scoring.InvalidScoreError
		if errors.As(err, &scoreErr) {
			h.logger.WithError(err).Error("classifier produced an invalid score")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": scoreErr.Error()})
		}
		h.logger.WithError(err).Error("failed to analyze text")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "analysis failed"})
	}

	recordAnalysisMetrics("api", prediction)
	return c.Status(fiber.StatusOK).JSON(prediction)
}
