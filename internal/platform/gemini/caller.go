package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"google.golang.org/genai"

	"github.com/ADNAN-ZEYA/Website-Builder/internal/config"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/generation"
)

// Caller implements generation.ModelCaller using Google's Gemini API via
// the google.golang.org/genai client.
//
// The underlying client is constructed lazily on the first call rather than
// at startup, so a missing API key surfaces as a failure of the first
// generation request instead of preventing the process from starting.
type Caller struct {
	cfg    config.LLMConfig
	logger *slog.Logger

	once      sync.Once
	client    *genai.Client
	clientErr error
}

// NewCaller creates a Caller from the LLM configuration. The configuration
// is read-only after this point; one Caller serves all requests.
func NewCaller(cfg config.LLMConfig, logger *slog.Logger) (*Caller, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.MaxOutputTokens <= 0 {
		return nil, fmt.Errorf("%w: max output tokens must be positive", generation.ErrInvalidConfig)
	}

	if cfg.GeminiAPIKey == "" {
		logger.Warn("no Gemini API key configured, model calls will fail until one is provided")
	}

	return &Caller{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// ensureClient initializes the genai client exactly once.
func (c *Caller) ensureClient(ctx context.Context) (*genai.Client, error) {
	c.once.Do(func() {
		c.client, c.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	if c.clientErr != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", c.clientErr)
	}
	return c.client, nil
}

// GenerateText performs one generation call against the named model with the
// fixed generation parameters from the configuration. The response is the
// concatenated text of the first candidate; typed API errors are converted
// to *generation.ProviderError so the resolver can classify them without
// importing this package's SDK.
func (c *Caller) GenerateText(ctx context.Context, model string, prompt generation.Prompt) (string, error) {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: prompt.SystemInstruction}},
		},
		MaxOutputTokens: c.cfg.MaxOutputTokens,
		Temperature:     genai.Ptr(c.cfg.Temperature),
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt.UserPrompt), cfg)
	if err != nil {
		return "", convertError(err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: nil response from model %s", generation.ErrEmptyResponse, model)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: model %s returned no text", generation.ErrEmptyResponse, model)
	}

	c.logger.DebugContext(ctx, "Gemini call completed",
		"model", model,
		"response_length", len(text))
	return text, nil
}

// convertError maps a genai SDK error to a *generation.ProviderError,
// preserving the HTTP status code when the SDK reported one.
func convertError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &generation.ProviderError{
			StatusCode: apiErr.Code,
			Message:    apiErr.Message,
		}
	}
	return &generation.ProviderError{Message: err.Error()}
}
