package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osservatorio/observer/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Generator implements ai.Generator against an Ollama chat endpoint.
type Generator struct {
	client      llms.Model
	temperature float64
	logger      *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// The explicit HTTP client timeout is the only cancellation the
	// single-threaded pipeline relies on: a call that exceeds it fails
	// that one item and the cycle moves on.
	client, err := ollama.New(
		ollama.WithServerURL(config.Host),
		ollama.WithModel(config.GeneratorModel),
		ollama.WithHTTPClient(&http.Client{Timeout: config.Timeout}),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:      client,
		temperature: config.Temperature,
		logger:      slog.Default().With("component", "ollama-generator"),
	}, nil
}

// NewGenerator creates a new chat generator using the provided configuration.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	return newGenerator(config)
}

// Generate sends the prompts to the model and returns the raw response text.
func (g *Generator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	g.logger.Debug("generating content", "system", len(systemPrompt), "user", len(userPrompt))

	response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(g.temperature))
	if err != nil {
		g.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		return "", fmt.Errorf("model returned no choices")
	}

	return response.Choices[0].Content, nil
}
