package http

import "github.com/gofiber/fiber/v2"

const ErrInvalidJsonPayload = "invalid json payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Analysis
	AnalyzeHandler      Handler
	AnalyzeBatchHandler Handler
	FilterHandler       Handler
	ModelsInfoHandler   Handler

	// File jobs
	AnalyzeFileHandler Handler
	GetJobHandler      Handler
	DownloadJobHandler Handler

	// History
	HistoryHandler Handler
}
