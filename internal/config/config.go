package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/tala-app/backend/internal/provider/gemini"
	"github.com/tala-app/backend/internal/provider/mistral"
)

// Config represents the backend configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Audio     AudioConfig
	Mistral   mistral.Config
	Gemini    gemini.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8000"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"120"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// DatabaseConfig contains connection settings for the two databases: the
// mutable user-data database and the read-only dictionary database.
type DatabaseConfig struct {
	UserDSN       string `env:"USER_DATABASE_DSN"       envDefault:"postgres://localhost:5432/tala_users?sslmode=disable"`
	DictionaryDSN string `env:"DICTIONARY_DATABASE_DSN" envDefault:"postgres://localhost:5432/tala_dictionary?sslmode=disable"`
	MaxConns      int32  `env:"DATABASE_MAX_CONNS"      envDefault:"10"`
}

// AuthConfig contains token issuing settings.
type AuthConfig struct {
	JWTSecret      string `env:"AUTH_JWT_SECRET"`
	JWTIssuer      string `env:"AUTH_JWT_ISSUER"       envDefault:"tala-backend"`
	AccessTokenTTL int    `env:"AUTH_ACCESS_TOKEN_TTL" envDefault:"30"` // minutes
}

// CacheConfig bounds the in-memory generation caches.
type CacheConfig struct {
	DialogueCapacity int `env:"CACHE_DIALOGUE_CAPACITY" envDefault:"500"`
	ReportCapacity   int `env:"CACHE_REPORT_CAPACITY"   envDefault:"200"`
	TTL              int `env:"CACHE_TTL"               envDefault:"3600"` // seconds
}

// RateLimitConfig bounds per-client request rates on generation endpoints.
type RateLimitConfig struct {
	RequestsPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	Burst             int `env:"RATE_LIMIT_BURST"      envDefault:"10"`
}

// AudioConfig locates cached audio files served to clients.
type AudioConfig struct {
	CacheDir string `env:"AUDIO_CACHE_DIR" envDefault:"audio_cache"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*DatabaseConfig
	*AuthConfig
	*CacheConfig
	*RateLimitConfig
	*AudioConfig
	Mistral *mistral.Config
	Gemini  *gemini.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Database,
		&cfg.Auth,
		&cfg.Cache,
		&cfg.RateLimit,
		&cfg.Audio,
		&cfg.Mistral,
		&cfg.Gemini,
	}
}
