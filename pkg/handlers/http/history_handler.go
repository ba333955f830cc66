package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/domain/analysis"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type historyHandler struct {
	logger *logrus.Logger
	repo   analysis.Repository
}

// NewHistoryHandler @Summary List recent analysis records
// @Description Returns the most recent persisted analysis outcomes, newest first
// @Tags History
// @Produce json
// @Param limit query int false "Maximum number of records (default 50, max 500)"
// @Success 200 {object} map[string]interface{} "Records"
// @Failure 503 {object} map[string]interface{} "History persistence is not enabled"
// @Router /api/v1/history [get]
func NewHistoryHandler(logger *logrus.Logger, repo analysis.Repository) Handler {
	return &historyHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *historyHandler) Handle(c *fiber.Ctx) error {
	if h.repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "history persistence is not enabled"})
	}

	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.repo.ListRecent(c.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list analysis history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list history"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}
