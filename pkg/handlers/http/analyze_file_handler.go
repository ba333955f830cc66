package http

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/app/job"
	"github.com/toxiguard/toxiguard/pkg/handlers/http/response"
)

// Column names recognized as the text column in CSV uploads, in
// priority order.
var csvTextColumns = []string{"text", "comment"}

var errNoTexts = errors.New("file contains no texts")

type analyzeFileHandler struct {
	logger    *logrus.Logger
	processor *job.Processor
	maxTexts  int
}

// NewAnalyzeFileHandler @Summary Submit a file for asynchronous analysis
// @Description Accepts a CSV or TXT upload and queues it as a background analysis job
// @Tags Jobs
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or TXT file with one text per row"
// @Success 202 {object} response.FileAcceptedOutput "Job accepted"
// @Failure 400 {object} map[string]interface{} "Invalid file"
// @Failure 503 {object} map[string]interface{} "Queue is full"
// @Router /api/v1/analyze/file [post]
func NewAnalyzeFileHandler(logger *logrus.Logger, processor *job.Processor, maxTexts int) Handler {
	return &analyzeFileHandler{
		logger:    logger,
		processor: processor,
		maxTexts:  maxTexts,
	}
}

func (h *analyzeFileHandler) Handle(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".csv" && ext != ".txt" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported file type, expected .csv or .txt"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.logger.WithError(err).Error("failed to open uploaded file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}
	defer f.Close()

	texts, err := parseTexts(ext, f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if h.maxTexts > 0 && len(texts) > h.maxTexts {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("too many texts: %d exceeds the maximum of %d", len(texts), h.maxTexts),
		})
	}

	j := h.processor.Submit(fileHeader.Filename, texts)
	if j.Status == job.StatusFailed {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": j.Error})
	}

	h.logger.WithFields(logrus.Fields{
		"job_id":   j.ID,
		"filename": j.Filename,
		"texts":    j.TotalTexts,
	}).Info("file analysis job accepted")

	return c.Status(fiber.StatusAccepted).JSON(response.FileAcceptedOutput{
		JobID:                j.ID,
		Filename:             j.Filename,
		TotalTexts:           j.TotalTexts,
		Status:               string(j.Status),
		EstimatedTimeSeconds: float64(j.TotalTexts) * job.EstimatedSecondsPerText,
	})
}

func parseTexts(ext string, r io.Reader) ([]string, error) {
	var (
		texts []string
		err   error
	)
	switch ext {
	case ".csv":
		texts, err = parseCSVTexts(r)
	case ".txt":
		texts, err = parsePlainTexts(r)
	}
	if err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, errNoTexts
	}
	return texts, nil
}

// parseCSVTexts reads a CSV file and extracts its text column. When the
// header names a recognized column that one is used, otherwise every
// row's first field is taken as the text.
func parseCSVTexts(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	column := 0
	start := 0
	for _, name := range csvTextColumns {
		for i, header := range rows[0] {
			if strings.EqualFold(strings.TrimSpace(header), name) {
				column = i
				start = 1
				break
			}
		}
		if start == 1 {
			break
		}
	}

	texts := make([]string, 0, len(rows)-start)
	for _, row := range rows[start:] {
		if column >= len(row) {
			continue
		}
		text := strings.TrimSpace(row[column])
		if text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}

func parsePlainTexts(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	texts := make([]string, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSpace(line)
		if text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}
