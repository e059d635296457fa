package llm

import (
	"context"
	"fmt"
)

// SummarizeRequest bounds a single summarization call.
type SummarizeRequest struct {
	Prompt    string
	Variant   Variant
	MinLength int
	MaxLength int
}

// Client is an abstraction over summarization providers
type Client interface {
	// Summarize generates a condensed rewrite of the prompt text
	Summarize(ctx context.Context, req SummarizeRequest) (string, error)
	// Label returns the service label reported for a model variant
	Label(variant Variant) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new summarization client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderHuggingFace:
		return NewHFClient(config, apiKey)
	default:
		return nil, fmt.Errorf("unknown summarizer provider: %s", config.Provider)
	}
}
