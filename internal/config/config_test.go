package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stubio/stubio-web/internal/config"
)

func TestEnvVars(t *testing.T) {
	t.Run("port gets a colon prefix", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		require.Equal(t, ":9090", config.New().GetPort())
	})

	t.Run("port default", func(t *testing.T) {
		require.Equal(t, ":8080", config.New().GetPort())
	})

	t.Run("env defaults to DEV", func(t *testing.T) {
		require.Equal(t, "DEV", config.New().GetEnv())
	})
}

func TestProviderConfig(t *testing.T) {
	t.Run("unconfigured by default", func(t *testing.T) {
		require.False(t, config.New().ProviderConfigured())
	})

	t.Run("needs both url and key", func(t *testing.T) {
		t.Setenv("AUTH_PROVIDER_URL", "https://auth.example.com")
		require.False(t, config.New().ProviderConfigured())

		t.Setenv("AUTH_PROVIDER_KEY", "anon-key")
		require.True(t, config.New().ProviderConfigured())
	})
}

func TestCorsConfig(t *testing.T) {
	t.Run("production origin is always allowed", func(t *testing.T) {
		origins := config.New().GetAllowedOrigins()
		require.True(t, origins.IsAllowedOrigin("https://stubio.dk"))
	})

	t.Run("extra origins from the environment", func(t *testing.T) {
		t.Setenv("ALLOWED_ORIGINS", "https://staging.stubio.dk, http://localhost:3000")

		origins := config.New().GetAllowedOrigins()
		require.True(t, origins.IsAllowedOrigin("https://staging.stubio.dk"))
		require.True(t, origins.IsAllowedOrigin("http://localhost:3000"))
		require.False(t, origins.IsAllowedOrigin("https://evil.example.com"))
	})
}
