package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// AIOptions holds the LLM provider options. API keys may be literal values
// or "${ENV_VAR}" references resolved at adapter construction.
type AIOptions struct {
	// Provider names the preferred vendor: "anthropic" or "openai".
	// Empty means the first vendor with credentials wins.
	Provider string `json:"provider" mapstructure:"provider"`

	// AnthropicAPIKey is the Anthropic credential.
	// Default: "${ANTHROPIC_API_KEY}".
	AnthropicAPIKey string `json:"anthropic_api_key" mapstructure:"anthropic_api_key"`

	// AnthropicModel overrides the default Anthropic model.
	AnthropicModel string `json:"anthropic_model" mapstructure:"anthropic_model"`

	// OpenAIAPIKey is the OpenAI credential. Default: "${OPENAI_API_KEY}".
	OpenAIAPIKey string `json:"openai_api_key" mapstructure:"openai_api_key"`

	// OpenAIModel overrides the default OpenAI chat model.
	OpenAIModel string `json:"openai_model" mapstructure:"openai_model"`

	// OpenAIVisionModel overrides the default OpenAI vision model.
	OpenAIVisionModel string `json:"openai_vision_model" mapstructure:"openai_vision_model"`

	// OpenAIBaseURL points at an OpenAI-compatible endpoint.
	OpenAIBaseURL string `json:"openai_base_url" mapstructure:"openai_base_url"`
}

// NewAIOptions creates a default AIOptions instance.
func NewAIOptions() *AIOptions {
	return &AIOptions{
		AnthropicAPIKey: "${ANTHROPIC_API_KEY}",
		OpenAIAPIKey:    "${OPENAI_API_KEY}",
	}
}

// Validate checks the AIOptions for correctness.
func (o *AIOptions) Validate() error {
	switch o.Provider {
	case "", "anthropic", "openai":
		return nil
	}
	return fmt.Errorf("provider %q must be \"anthropic\" or \"openai\"", o.Provider)
}

// AddFlags adds the AIOptions flags to the given flag set.
func (o *AIOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Provider, "ai.provider", o.Provider, "Preferred LLM provider (anthropic or openai).")
	fs.StringVar(&o.AnthropicAPIKey, "ai.anthropic-api-key", o.AnthropicAPIKey, "Anthropic API key or ${ENV_VAR} reference.")
	fs.StringVar(&o.AnthropicModel, "ai.anthropic-model", o.AnthropicModel, "Anthropic model override.")
	fs.StringVar(&o.OpenAIAPIKey, "ai.openai-api-key", o.OpenAIAPIKey, "OpenAI API key or ${ENV_VAR} reference.")
	fs.StringVar(&o.OpenAIModel, "ai.openai-model", o.OpenAIModel, "OpenAI chat model override.")
	fs.StringVar(&o.OpenAIVisionModel, "ai.openai-vision-model", o.OpenAIVisionModel, "OpenAI vision model override.")
	fs.StringVar(&o.OpenAIBaseURL, "ai.openai-base-url", o.OpenAIBaseURL, "OpenAI-compatible endpoint base URL.")
}
