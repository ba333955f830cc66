package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/app/analyze"
	"github.com/toxiguard/toxiguard/pkg/config"
	handlers "github.com/toxiguard/toxiguard/pkg/handlers/http"
)

type (
	ApiServerDI struct {
		HandlerTransport handlers.HandlerTransport
		Config           *config.Config
		Logger           *logrus.Logger
		Analyzer         analyze.Analyzer
	}
	ApiServer struct {
		*BaseServer
		handlerTransport handlers.HandlerTransport
		analyzer         analyze.Analyzer
	}
)

func NewApiServer(di ApiServerDI) *ApiServer {
	return &ApiServer{
		BaseServer:       NewBaseServer(di.Config, di.Logger),
		handlerTransport: di.HandlerTransport,
		analyzer:         di.Analyzer,
	}
}

func (s *ApiServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("Starting API server")
	return s.Router.Listen(addr)
}

func (s *ApiServer) setupRoutes() {
	baseRouter := s.Router.Group("")
	s.addRoutes(baseRouter)
}

func (s *ApiServer) addRoutes(router fiber.Router) {
	v1 := router.Group("/api/v1")
	{
		models := v1.Group("/models")
		{
			models.Get("/info", s.handlerTransport.ModelsInfoHandler.Handle)
		}

		analyzeGroup := v1.Group("/analyze")
		{
			analyzeGroup.Post("", s.handlerTransport.AnalyzeHandler.Handle)
			analyzeGroup.Post("/batch", s.handlerTransport.AnalyzeBatchHandler.Handle)
			analyzeGroup.Post("/filter", s.handlerTransport.FilterHandler.Handle)
			analyzeGroup.Post("/file", s.handlerTransport.AnalyzeFileHandler.Handle)
		}

		jobs := v1.Group("/jobs")
		{
			jobs.Get("/:job_id", s.handlerTransport.GetJobHandler.Handle)
			jobs.Get("/:job_id/download", s.handlerTransport.DownloadJobHandler.Handle)
		}

		v1.Get("/history", s.handlerTransport.HistoryHandler.Handle)
	}
}

// setupHealthCheck reports service liveness and whether both category
// models answer for themselves as loaded.
func (s *ApiServer) setupHealthCheck() {
	s.Router.Get("/health", func(ctx *fiber.Ctx) error {
		info := s.analyzer.ModelsInfo()
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":        "healthy",
			"models_loaded": info.HarassmentModel.Loaded && info.MisogynyModel.Loaded,
			"time":          time.Now().Format(time.RFC3339),
		})
	})
}

func (s *ApiServer) Shutdown() error {
	return s.Router.Shutdown()
}
