package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/app/analyze"
	"github.com/toxiguard/toxiguard/pkg/app/job"
	"github.com/toxiguard/toxiguard/pkg/config"
	"github.com/toxiguard/toxiguard/pkg/domain/analysis"
	handlers "github.com/toxiguard/toxiguard/pkg/handlers/http"
	infraCache "github.com/toxiguard/toxiguard/pkg/infra/cache"
	"github.com/toxiguard/toxiguard/pkg/infra/classifier"
	"github.com/toxiguard/toxiguard/pkg/infra/classifier/keyword"
	"github.com/toxiguard/toxiguard/pkg/infra/classifier/remote"
	"github.com/toxiguard/toxiguard/pkg/infra/database"
	"github.com/toxiguard/toxiguard/pkg/infra/httpx"
	infraLogger "github.com/toxiguard/toxiguard/pkg/infra/logger"
	"github.com/toxiguard/toxiguard/pkg/infra/prometheus"
	"github.com/toxiguard/toxiguard/pkg/infra/repository"
	"github.com/toxiguard/toxiguard/pkg/scoring"
	"github.com/toxiguard/toxiguard/pkg/server"
)

const (
	scoreCacheTTL          = time.Hour
	inferenceTimeout       = 30 * time.Second
	breakerTimeout         = 30 * time.Second
	breakerMaxFailures     = 5
	maxFileTextsMultiplier = 100
)

type remoteSettings struct {
	BaseURL         string `mapstructure:"base_url"`
	Token           string `mapstructure:"token"`
	HarassmentModel string `mapstructure:"harassment_model"`
	MisogynyModel   string `mapstructure:"misogyny_model"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	prometheus.Initialize(prometheus.DefaultMetricsConfig())

	weights, err := scoring.NewWeights(cfg.Toxicity.HarassmentWeight, cfg.Toxicity.MisogynyWeight)
	if err != nil {
		logger.Fatalf("Invalid toxicity weights: %v", err)
	}

	harassment, misogyny, err := buildClassifiers(logger, cfg)
	if err != nil {
		logger.Fatalf("Failed to build classifiers: %v", err)
	}

	analyzer := analyze.NewService(logger, harassment, misogyny, weights)

	if cfg.Redis.Enabled {
		scores := infraCache.NewScoreCache(infraCache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, scoreCacheTTL)
		analyzer = analyzer.WithScoreCache(scores)
		logger.Info("score cache enabled")
	}

	var historyRepo analysis.Repository
	if cfg.Database.Enabled {
		db, err := database.Connect(database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}, logger)
		if err != nil {
			logger.Fatalf("Failed to initialize database: %v", err)
		}
		if err := db.AutoMigrate(&analysis.Record{}); err != nil {
			logger.Fatalf("Failed to migrate database: %v", err)
		}
		historyRepo = repository.NewAnalysisRepository(db)
		analyzer = analyzer.WithHistory(historyRepo)
		logger.Info("analysis history enabled")
	}

	jobStore := job.NewStore()
	processor := job.NewProcessor(logger, jobStore, analyzer, cfg.Toxicity.DefaultThreshold)
	go processor.Run(ctx)

	handlerTransport := handlers.HandlerTransport{
		// Analysis
		AnalyzeHandler:      handlers.NewAnalyzeHandler(logger, analyzer, cfg.Toxicity.DefaultThreshold),
		AnalyzeBatchHandler: handlers.NewAnalyzeBatchHandler(logger, analyzer, cfg.Toxicity.DefaultThreshold, cfg.Toxicity.MaxBatchSize),
		FilterHandler:       handlers.NewFilterHandler(logger, analyzer, cfg.Toxicity.DefaultThreshold, cfg.Toxicity.MaxBatchSize),
		ModelsInfoHandler:   handlers.NewModelsInfoHandler(logger, analyzer),
		// File jobs
		AnalyzeFileHandler: handlers.NewAnalyzeFileHandler(logger, processor, cfg.Toxicity.MaxBatchSize*maxFileTextsMultiplier),
		GetJobHandler:      handlers.NewGetJobHandler(logger, jobStore),
		DownloadJobHandler: handlers.NewDownloadJobHandler(logger, jobStore),
		// History
		HistoryHandler: handlers.NewHistoryHandler(logger, historyRepo),
	}

	srv := server.NewApiServer(server.ApiServerDI{
		HandlerTransport: handlerTransport,
		Config:           cfg,
		Logger:           logger,
		Analyzer:         analyzer,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}

func buildClassifiers(logger *logrus.Logger, cfg *config.Config) (classifier.Classifier, classifier.Classifier, error) {
	switch cfg.Classifier.Provider {
	case "remote":
		var settings remoteSettings
		if err := mapstructure.Decode(cfg.Classifier.Settings, &settings); err != nil {
			return nil, nil, fmt.Errorf("invalid remote classifier settings: %w", err)
		}
		if settings.BaseURL == "" {
			return nil, nil, fmt.Errorf("remote classifier requires base_url")
		}

		client := &http.Client{Timeout: inferenceTimeout}
		harassment := remote.NewClassifier(
			client,
			logger,
			httpx.NewCircuitBreaker("harassment-classifier", breakerTimeout, breakerMaxFailures),
			remote.Config{
				BaseURL:  settings.BaseURL,
				Token:    settings.Token,
				Model:    settings.HarassmentModel,
				Category: scoring.CategoryHarassment,
			},
		)
		misogyny := remote.NewClassifier(
			client,
			logger,
			httpx.NewCircuitBreaker("misogyny-classifier", breakerTimeout, breakerMaxFailures),
			remote.Config{
				BaseURL:  settings.BaseURL,
				Token:    settings.Token,
				Model:    settings.MisogynyModel,
				Category: scoring.CategoryMisogyny,
			},
		)
		return harassment, misogyny, nil

	case "keyword", "":
		harassment, err := keyword.NewHarassmentClassifier()
		if err != nil {
			return nil, nil, err
		}
		misogyny, err := keyword.NewMisogynyClassifier()
		if err != nil {
			return nil, nil, err
		}
		return harassment, misogyny, nil

	default:
		return nil, nil, fmt.Errorf("unknown classifier provider %q", cfg.Classifier.Provider)
	}
}
