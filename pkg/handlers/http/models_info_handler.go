package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/app/analyze"
)

type modelsInfoHandler struct {
	logger   *logrus.Logger
	analyzer analyze.Analyzer
}

// NewModelsInfoHandler @Summary Get loaded model information
// @Description Returns the classifiers behind the service and the active combination weights
// @Tags Models
// @Produce json
// @Success 200 {object} analyze.ModelsInfo "Model information"
// @Router /api/v1/models/info [get]
func NewModelsInfoHandler(logger *logrus.Logger, analyzer analyze.Analyzer) Handler {
	return &modelsInfoHandler{
		logger:   logger,
		analyzer: analyzer,
	}
}

func (h *modelsInfoHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.analyzer.ModelsInfo())
}
