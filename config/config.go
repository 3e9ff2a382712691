package config

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env string

const (
	Local      Env = "local"
	Production Env = "production"
)

type App struct {
	Env          Env
	Port         string
	MetricsPort  string
	LogLevel     string
	BaseURL      string
	FrameSources []string
}

type Content struct {
	Dir                string
	Extension          string
	DefaultLanguage    string
	Languages          []string
	ResolveConcurrency int
	Watch              bool
}

// IsSupported reports whether lang is one of the configured content languages.
func (c Content) IsSupported(lang string) bool {
	return slices.Contains(c.Languages, lang)
}

type Database struct {
	Username string
	Password string
	Endpoint string
	Name     string
	SSLMode  string
}

// Enabled is false when no endpoint is configured; comments are then disabled.
func (d Database) Enabled() bool {
	return d.Endpoint != ""
}

type Slack struct {
	BotToken          string
	CommentsChannelID string
	AnnounceChannelID string
}

type Config struct {
	App      App
	Content  Content
	Database Database
	Slack    Slack
}

var defaultFrameSources = []string{
	"'self'",
	"*.hellodify.com",
	"https://giscus.app",
	"https://www.youtube.com",
	"https://*.youtube.com",
	"https://*.vercel.app",
	"https://vercel.com",
}

func New() *Config {
	// A missing .env file is normal outside of local development.
	_ = godotenv.Load()

	env := Env(getEnv("APP_ENV", string(Local)))
	if env != Production {
		env = Local
	}

	cfg := &Config{
		App: App{
			Env:          env,
			Port:         getEnv("APP_PORT", "8080"),
			MetricsPort:  getEnv("APP_METRICS_PORT", "9090"),
			LogLevel:     getEnv("APP_LOG_LEVEL", "info"),
			BaseURL:      strings.TrimSuffix(getEnv("APP_BASE_URL", "http://localhost:8080"), "/"),
			FrameSources: getList("APP_FRAME_SOURCES", defaultFrameSources),
		},
		Content: Content{
			Dir:                getEnv("CONTENT_DIR", "content/docs"),
			Extension:          normalizeExtension(getEnv("CONTENT_EXTENSION", ".mdx")),
			DefaultLanguage:    getEnv("CONTENT_DEFAULT_LANGUAGE", "en"),
			Languages:          getList("CONTENT_LANGUAGES", []string{"en", "zh", "ja"}),
			ResolveConcurrency: getInt("CONTENT_RESOLVE_CONCURRENCY", 16),
			Watch:              getBool("CONTENT_WATCH", env == Local),
		},
		Database: Database{
			Username: os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Endpoint: os.Getenv("DB_ENDPOINT"),
			Name:     getEnv("DB_NAME", "helloadp"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Slack: Slack{
			BotToken:          os.Getenv("SLACK_BOT_TOKEN"),
			CommentsChannelID: os.Getenv("SLACK_COMMENTS_CHANNEL_ID"),
			AnnounceChannelID: os.Getenv("SLACK_ANNOUNCE_CHANNEL_ID"),
		},
	}

	if !cfg.Content.IsSupported(cfg.Content.DefaultLanguage) {
		cfg.Content.Languages = append([]string{cfg.Content.DefaultLanguage}, cfg.Content.Languages...)
	}
	if cfg.Content.ResolveConcurrency < 1 {
		cfg.Content.ResolveConcurrency = 1
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return slices.Clone(fallback)
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return slices.Clone(fallback)
	}
	return out
}

func normalizeExtension(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
