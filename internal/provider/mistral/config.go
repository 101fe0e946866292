package mistral

// Config contains Mistral provider configuration. Mistral exposes an
// OpenAI-compatible chat-completions API, so the fields map to the OpenAI
// SDK options:
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
type Config struct {
	APIKey  string `env:"MISTRAL_API_KEY"`
	BaseURL string `env:"MISTRAL_BASE_URL"   envDefault:"https://api.mistral.ai/v1"`
	Model   string `env:"MISTRAL_MODEL_NAME" envDefault:"open-mistral-7b"`
	Timeout int    `env:"MISTRAL_TIMEOUT"    envDefault:"60"`
}
