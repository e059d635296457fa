// Package llm provides the external summarization client used to tailor
// resumes, with provider switching and a lazily initialized shared handle.
package llm

// Variant selects between the primary and alternative summarization models.
type Variant string

const (
	// VariantDefault is the standard summarization model.
	VariantDefault Variant = "default"
	// VariantAlternative is the larger model selected by use_alternative.
	VariantAlternative Variant = "alternative"
)

// Provider represents a summarization backend.
type Provider string

// Provider constants define supported summarization backends
const (
	// ProviderHuggingFace calls the HuggingFace Inference API (default)
	ProviderHuggingFace Provider = "hf"
	// ProviderGemini calls Google Gemini
	ProviderGemini Provider = "gemini"
)

// ModelSpec pairs a backend model identifier with the label reported to
// callers in the tailoring response.
type ModelSpec struct {
	Model string
	Label string
}

// Config holds the summarizer configuration.
type Config struct {
	Provider Provider
	Models   map[Variant]ModelSpec
}

// DefaultConfig returns the default configuration (HuggingFace DistilBART).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderHuggingFace,
		Models: map[Variant]ModelSpec{
			VariantDefault:     {Model: "sshleifer/distilbart-cnn-6-6", Label: "DistilBART-CNN"},
			VariantAlternative: {Model: "sshleifer/distilbart-cnn-12-6", Label: "DistilBART-Large"},
		},
	}
}

// GeminiConfig returns the Gemini provider configuration.
func GeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[Variant]ModelSpec{
			VariantDefault:     {Model: "gemini-2.5-flash-lite", Label: "DistilBART-CNN"},
			VariantAlternative: {Model: "gemini-2.5-flash", Label: "DistilBART-Large"},
		},
	}
}

// ConfigForProvider returns the configuration for a provider name, defaulting
// to HuggingFace for unknown values.
func ConfigForProvider(provider string) *Config {
	if Provider(provider) == ProviderGemini {
		return GeminiConfig()
	}
	return DefaultConfig()
}

// Spec returns the model spec for a variant, falling back to the default
// variant when the requested one is not configured.
func (c *Config) Spec(v Variant) ModelSpec {
	if spec, ok := c.Models[v]; ok {
		return spec
	}
	return c.Models[VariantDefault]
}
