// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the full application configuration.
type Config struct {
	DB       DBConfig
	S3       S3Config
	OpenAI   OpenAIConfig
	Pipeline PipelineConfig
	Metrics  MetricsConfig
}

// DBConfig holds PostgreSQL connection parameters.
type DBConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	DBName  string
	SSLMode string
}

// DSN returns a PostgreSQL connection string.
func (c DBConfig) DSN() string {
	return "postgres://" + c.User + ":" + c.Pass +
		"@" + c.Host + ":" + strconv.Itoa(c.Port) +
		"/" + c.DBName + "?sslmode=" + c.SSLMode
}

// S3Config holds S3-compatible object storage parameters for the raw page
// archive. An empty Endpoint disables archiving.
type S3Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
}

// OpenAIConfig holds parameters for the chat-completions API used to expand
// sparse keywords.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// PipelineConfig holds tunables for the ingestion pipeline.
type PipelineConfig struct {
	// MaxFeedEntries caps how many entries of a feed listing are processed.
	MaxFeedEntries int
	// ExtractTimeout bounds a single article fetch. Some mirrors are very
	// slow, so the default is generous.
	ExtractTimeout time.Duration
	// ExcludedSources lists publisher names dropped from feed listings.
	ExcludedSources []string
	// Queries is the comma-separated query list the worker warms up on a
	// schedule.
	Queries string
}

// MetricsConfig holds the Prometheus endpoint parameters.
type MetricsConfig struct {
	Addr string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DB: DBConfig{
			Host:    envOr("DB_HOST", "localhost"),
			Port:    envOrInt("DB_PORT", 5432),
			User:    envOr("DB_USER", "scoop"),
			Pass:    envOr("DB_PASS", "scoop"),
			DBName:  envOr("DB_NAME", "scoop"),
			SSLMode: envOr("DB_SSLMODE", "disable"),
		},
		S3: S3Config{
			Endpoint:  envOr("S3_ENDPOINT", ""),
			Bucket:    envOr("S3_BUCKET", "scoop-pages"),
			AccessKey: envOr("S3_ACCESS_KEY", ""),
			SecretKey: envOr("S3_SECRET_KEY", ""),
			Region:    envOr("S3_REGION", "us-east-1"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  envOr("OPENAI_API_KEY", ""),
			BaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   envOr("OPENAI_MODEL", "gpt-3.5-turbo"),
		},
		Pipeline: PipelineConfig{
			MaxFeedEntries:  envOrInt("PIPELINE_MAX_FEED_ENTRIES", 15),
			ExtractTimeout:  envOrDuration("PIPELINE_EXTRACT_TIMEOUT", 2*time.Minute),
			ExcludedSources: splitList(envOr("PIPELINE_EXCLUDED_SOURCES", "")),
			Queries:         envOr("PIPELINE_QUERIES", "us,business"),
		},
		Metrics: MetricsConfig{
			Addr: envOr("METRICS_ADDR", ""),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envOrDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
