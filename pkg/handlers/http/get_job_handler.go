package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/app/job"
)

type getJobHandler struct {
	logger *logrus.Logger
	store  *job.Store
}

// NewGetJobHandler @Summary Get job status
// @Description Returns the status, progress and, once completed, the results of an analysis job
// @Tags Jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} job.Job "Job status"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /api/v1/jobs/{job_id} [get]
func NewGetJobHandler(logger *logrus.Logger, store *job.Store) Handler {
	return &getJobHandler{
		logger: logger,
		store:  store,
	}
}

func (h *getJobHandler) Handle(c *fiber.Ctx) error {
	j, ok := h.store.Get(c.Params("job_id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	return c.Status(fiber.StatusOK).JSON(j)
}
