package gemini

// Config contains Gemini provider configuration.
type Config struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	BaseURL string `env:"GEMINI_BASE_URL"   envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string `env:"GEMINI_MODEL_NAME" envDefault:"gemini-1.5-flash"`
	Timeout int    `env:"GEMINI_TIMEOUT"    envDefault:"60"`
}
