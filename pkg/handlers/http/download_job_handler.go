package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/app/job"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

var downloadHeader = []string{
	"text",
	"harassment_score",
	"misogyny_score",
	"combined_toxicity_score",
	"is_toxic",
	"risk_level",
	"flagged_categories",
}

type downloadJobHandler struct {
	logger *logrus.Logger
	store  *job.Store
}

// NewDownloadJobHandler @Summary Download job results as CSV
// @Description Returns the results of a completed analysis job as a CSV attachment
// @Tags Jobs
// @Produce text/csv
// @Param job_id path string true "Job ID"
// @Success 200 {file} file "CSV file"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 409 {object} map[string]interface{} "Job is not completed"
// @Router /api/v1/jobs/{job_id}/download [get]
func NewDownloadJobHandler(logger *logrus.Logger, store *job.Store) Handler {
	return &downloadJobHandler{
		logger: logger,
		store:  store,
	}
}

func (h *downloadJobHandler) Handle(c *fiber.Ctx) error {
	j, ok := h.store.Get(c.Params("job_id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if j.Status != job.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":  "job is not completed",
			"status": j.Status,
		})
	}

	body, err := resultsCSV(j.Results)
	if err != nil {
		h.logger.WithError(err).WithField("job_id", j.ID).Error("failed to encode job results")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to encode results"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="results_%s.csv"`, j.ID))
	return c.Status(fiber.StatusOK).Send(body)
}

func resultsCSV(results []scoring.Prediction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(downloadHeader); err != nil {
		return nil, err
	}
	for _, r := range results {
		row := []string{
			r.Text,
			formatScore(r.HarassmentScore),
			formatScore(r.MisogynyScore),
			formatScore(r.CombinedScore),
			strconv.FormatBool(r.IsToxic),
			string(r.RiskLevel),
			strings.Join(r.Flagged, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
