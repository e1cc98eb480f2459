package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// EmbeddingClient is an abstraction over embedding providers.
//
// Available reports whether the client can actually produce embeddings;
// callers are expected to check it and degrade rather than treat an
// unavailable client as an error condition.
type EmbeddingClient interface {
	// Embed returns one embedding vector per input text, in input order
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Available reports whether the provider is usable
	Available() bool
	// Model returns the embedding model name
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates an embedding client based on configuration. An empty
// API key yields the Unavailable client rather than an error.
func NewClient(ctx context.Context, config *Config, apiKey string) (EmbeddingClient, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if apiKey == "" {
		return Unavailable{}, nil
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements EmbeddingClient for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini embedding client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Embed returns one embedding per input text via a single batch request.
func (c *GeminiClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	em := c.client.EmbeddingModel(c.config.Model)
	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, &EmbeddingError{Model: c.config.Model, Err: err}
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, &EmbeddingError{
			Model: c.config.Model,
			Err:   fmt.Errorf("got %d embeddings for %d inputs", len(resp.Embeddings), len(texts)),
		}
	}

	out := make([][]float32, len(texts))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, &EmbeddingError{
				Model: c.config.Model,
				Err:   fmt.Errorf("empty embedding at index %d", i),
			}
		}
		out[i] = emb.Values
	}
	return out, nil
}

// Available reports whether the client is usable
func (c *GeminiClient) Available() bool { return c.client != nil }

// Model returns the configured embedding model name
func (c *GeminiClient) Model() string { return c.config.Model }

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Unavailable is the no-provider client. Embed always fails; callers that
// check Available first never reach it.
type Unavailable struct{}

func (Unavailable) Embed(context.Context, []string) ([][]float32, error) {
	return nil, fmt.Errorf("no embedding provider configured")
}
func (Unavailable) Available() bool { return false }
func (Unavailable) Model() string   { return "" }
func (Unavailable) Close() error    { return nil }
