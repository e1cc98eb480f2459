// Package llm provides the embedding-provider abstraction and its
// configuration. The scoring engine depends only on the EmbeddingClient
// interface, so providers can be swapped and tests can inject fakes.
package llm

// Provider represents an embedding provider
type Provider string

// Provider constants define supported embedding providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the embedding model configuration
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "text-embedding-004",
	}
}

// WithModel returns a new Config using a specific embedding model
func (c *Config) WithModel(model string) *Config {
	return &Config{Provider: c.Provider, Model: model}
}
