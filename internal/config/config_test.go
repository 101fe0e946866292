package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		os.Clearenv()

		cfg := config.Load()

		require.Equal(t, 8000, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 120, cfg.Server.WriteTimeout)
		require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		require.True(t, cfg.CORS.AllowCredentials)
		require.Equal(t, int32(10), cfg.Database.MaxConns)
		require.Equal(t, "tala-backend", cfg.Auth.JWTIssuer)
		require.Equal(t, 30, cfg.Auth.AccessTokenTTL)
		require.Equal(t, 500, cfg.Cache.DialogueCapacity)
		require.Equal(t, 200, cfg.Cache.ReportCapacity)
		require.Equal(t, 3600, cfg.Cache.TTL)
		require.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
		require.Equal(t, 10, cfg.RateLimit.Burst)
		require.Equal(t, "audio_cache", cfg.Audio.CacheDir)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://tala.app,https://staging.tala.app")
		t.Setenv("AUTH_JWT_SECRET", "test-secret")
		t.Setenv("CACHE_TTL", "60")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
		t.Setenv("MISTRAL_API_KEY", "mk")
		t.Setenv("GEMINI_API_KEY", "gk")

		cfg := config.Load()

		require.Equal(t, 9090, cfg.Server.Port)
		require.Equal(t, []string{"https://tala.app", "https://staging.tala.app"}, cfg.CORS.AllowedOrigins)
		require.Equal(t, "test-secret", cfg.Auth.JWTSecret)
		require.Equal(t, 60, cfg.Cache.TTL)
		require.Equal(t, 5, cfg.RateLimit.RequestsPerMinute)
		require.Equal(t, "mk", cfg.Mistral.APIKey)
		require.Equal(t, "gk", cfg.Gemini.APIKey)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	t.Run("should expose pointers into the parsed config", func(t *testing.T) {
		os.Clearenv()
		cfg := config.Load()

		dep := config.ParseDependenciesConfig(cfg)

		require.Same(t, &cfg.Server, dep.ServerConfig)
		require.Same(t, &cfg.Auth, dep.AuthConfig)
	})
}
