package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("CONTENT_LANGUAGES", "")
	t.Setenv("CONTENT_DEFAULT_LANGUAGE", "")
	t.Setenv("CONTENT_WATCH", "")
	t.Setenv("DB_ENDPOINT", "")

	cfg := New()

	require.Equal(t, Local, cfg.App.Env)
	require.Equal(t, "8080", cfg.App.Port)
	require.Equal(t, "9090", cfg.App.MetricsPort)
	require.Equal(t, "content/docs", cfg.Content.Dir)
	require.Equal(t, ".mdx", cfg.Content.Extension)
	require.Equal(t, "en", cfg.Content.DefaultLanguage)
	require.Equal(t, []string{"en", "zh", "ja"}, cfg.Content.Languages)
	require.True(t, cfg.Content.Watch)
	require.False(t, cfg.Database.Enabled())
	require.Contains(t, cfg.App.FrameSources, "https://giscus.app")
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_BASE_URL", "https://hello-adp.example/")
	t.Setenv("CONTENT_LANGUAGES", " zh , ja ,")
	t.Setenv("CONTENT_DEFAULT_LANGUAGE", "en")
	t.Setenv("CONTENT_EXTENSION", "md")
	t.Setenv("CONTENT_RESOLVE_CONCURRENCY", "0")
	t.Setenv("CONTENT_WATCH", "")
	t.Setenv("DB_ENDPOINT", "db:5432")

	cfg := New()

	require.Equal(t, Production, cfg.App.Env)
	require.Equal(t, "https://hello-adp.example", cfg.App.BaseURL)
	require.Equal(t, []string{"en", "zh", "ja"}, cfg.Content.Languages, "default language is always supported")
	require.Equal(t, ".md", cfg.Content.Extension)
	require.Equal(t, 1, cfg.Content.ResolveConcurrency)
	require.False(t, cfg.Content.Watch, "watching defaults to off outside local")
	require.True(t, cfg.Database.Enabled())
}

func TestNew_UnknownEnvFallsBackToLocal(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	require.Equal(t, Local, New().App.Env)
}
