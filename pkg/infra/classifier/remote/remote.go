package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/infra/classifier"
	"github.com/toxiguard/toxiguard/pkg/infra/httpx"
)

const classifyPath = "/v1/classify"

var ErrFailedInferenceCall = errors.New("inference service call failed")

// Config points a remote classifier at one category model of the
// inference service.
type Config struct {
	BaseURL  string `mapstructure:"base_url"`
	Token    string `mapstructure:"token"`
	Model    string `mapstructure:"model"`
	Category string `mapstructure:"category"`
}

// Classifier scores texts against a served model over HTTP. Calls go
// through a circuit breaker so a dead inference service fails fast.
type Classifier struct {
	client         httpx.Client
	logger         *logrus.Logger
	circuitBreaker httpx.CircuitBreaker
	cfg            Config
}

type classifyRequest struct {
	Model string   `json:"model,omitempty"`
	Input []string `json:"input"`
}

type classifyResponse struct {
	Scores []float64 `json:"scores"`
}

func NewClassifier(
	client httpx.Client,
	logger *logrus.Logger,
	circuitBreaker httpx.CircuitBreaker,
	cfg Config,
) *Classifier {
	if client == nil {
		client = &http.Client{}
	}
	return &Classifier{
		client:         client,
		logger:         logger,
		circuitBreaker: circuitBreaker,
		cfg:            cfg,
	}
}

func (c *Classifier) Score(ctx context.Context, text string) (float64, error) {
	var score float64
	err := c.circuitBreaker.Execute(func() error {
		var innerErr error
		score, innerErr = c.executeClassifyRequest(ctx, text)
		return innerErr
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.WithError(err).WithField("category", c.cfg.Category).Error("classifier call failed")
		}
		return 0, err
	}
	return score, nil
}

func (c *Classifier) executeClassifyRequest(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(classifyRequest{
		Model: c.cfg.Model,
		Input: []string{text},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+classifyPath,
		bytes.NewReader(body),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Token", c.cfg.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call inference service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrFailedInferenceCall, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("classify response read error: %w", err)
	}

	var parsed classifyResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return 0, fmt.Errorf("failed to decode classify response: %w", err)
	}
	if len(parsed.Scores) == 0 {
		return 0, fmt.Errorf("%w: empty scores", ErrFailedInferenceCall)
	}
	return parsed.Scores[0], nil
}

func (c *Classifier) Info() classifier.ModelInfo {
	name := c.cfg.Model
	if name == "" {
		name = "remote-default"
	}
	return classifier.ModelInfo{
		Name:     name,
		Category: c.cfg.Category,
		Kind:     classifier.KindRemote,
		Loaded:   true,
	}
}
