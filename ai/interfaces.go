package ai

import "context"

// Generator produces chat-completion text from a generative model.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate sends a system prompt and a user prompt to the model and
	// returns the textual content of the single (non-streaming) response.
	// The returned text is unprocessed: callers are responsible for any
	// structured-output parsing and repair.
	// Returns an error if the model is unreachable or times out.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in
	// a batch, more efficient than calling EmbedText repeatedly. The
	// returned slice preserves the input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Generator and
// Embedder instances sharing configuration and resources.
type Provider interface {
	// Generator returns the chat-completion service.
	// The returned Generator is safe for concurrent use.
	Generator() Generator

	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
