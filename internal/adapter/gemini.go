package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kashishbhadauriya/Careersphere/internal/config"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/utils"
	"github.com/kashishbhadauriya/Careersphere/models"
)

const (
	apiKeyHeader = "x-goog-api-key"

	generationTemperature     = 0.7
	generationMaxOutputTokens = 6144
)

var (
	ErrEmptyAPIKey  = errors.New("gemini api key is empty")
	ErrEmptyModel   = errors.New("gemini model is empty")
	ErrEmptyBaseURL = errors.New("gemini base url is empty")
)

type geminiAdapter struct {
	client *utils.HTTPClient
	apiKey string
	model  string
	logger *logger.Logger
}

type generateContentRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Role  string        `json:"role"`
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// NewGeminiAdapter returns an AnalysisAdapter calling the generateContent
// endpoint of cfg.GeminiModel.
func NewGeminiAdapter(cfg config.Adapter, log *logger.Logger) (AnalysisAdapter, error) {
	switch {
	case strings.TrimSpace(cfg.GeminiAPIKey) == "":
		return nil, ErrEmptyAPIKey
	case strings.TrimSpace(cfg.GeminiModel) == "":
		return nil, ErrEmptyModel
	}

	baseURL, err := normalizeBaseURL(cfg.GeminiBaseURL)
	if err != nil {
		return nil, err
	}

	return &geminiAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.GeminiAPIKey,
		model:  strings.TrimSpace(cfg.GeminiModel),
		logger: log.Component("adapter"),
	}, nil
}

func (g *geminiAdapter) Analyze(ctx context.Context, answers models.Answers) (models.Analysis, error) {
	log := g.logger

	prompt, err := BuildPrompt(answers)
	if err != nil {
		log.Err(err).Msg("failed to build prompt")
		return models.Analysis{}, err
	}

	body := generateContentRequest{
		Contents: []requestContent{{
			Role:  "user",
			Parts: []requestPart{{Text: prompt}},
		}},
		GenerationConfig: generationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: generationMaxOutputTokens,
		},
	}

	start := time.Now()
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, g.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(g.generateContentPath())
	if err != nil {
		log.Err(err).Str("model", g.model).Msg("generateContent request failed")
		return models.Analysis{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Error().Err(err).
			Str("model", g.model).
			Int("status", resp.StatusCode()).
			Msg("generateContent returned an error status")
		return models.Analysis{}, err
	}

	analysis := ExtractAnalysis(resp.Body())
	log.Debug().
		Str("model", g.model).
		Str("finish_reason", analysis.FinishReason).
		Dur("duration", time.Since(start)).
		Int("answers", len(answers)).
		Msg("analysis received")

	return analysis, nil
}

func (g *geminiAdapter) generateContentPath() string {
	return "/v1beta/models/" + url.PathEscape(g.model) + ":generateContent"
}

// normalizeBaseURL requires an absolute http(s) URL and strips trailing slashes.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid gemini base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid gemini base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid gemini base url %q: host is empty", raw)
	}

	return strings.TrimRight(raw, "/"), nil
}
