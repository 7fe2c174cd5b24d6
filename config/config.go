// Package config loads service configuration from environment variables
// with usable defaults for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every knob of the observer services.
type Config struct {
	// Ollama endpoint and models.
	OllamaHost     string
	GeneratorModel string
	EmbeddingModel string
	Temperature    float64
	ModelTimeout   time.Duration

	// Article store. An empty DSN selects the in-memory store.
	PostgresDSN string

	// Vector index. An empty path selects an in-memory index.
	IndexPath      string
	IndexPoolSize  int
	IndexBatchSize int

	// Feed fetching.
	PerFeedLimit int
	LookbackDays int

	// Ingestion scheduling. Zero or negative disables the scheduler.
	IngestInterval time.Duration

	// HTTP API.
	BindAddr   string
	AnswerTopK int
}

// Load builds a Config from environment variables.
func Load() (*Config, error) {
	c := &Config{
		OllamaHost:     getEnv("OLLAMA_HOST", "http://127.0.0.1:11434"),
		GeneratorModel: getEnv("GENERATOR_MODEL", "llama3.2:3b"),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "nomic-embed-text"),
		Temperature:    getFloat("MODEL_TEMPERATURE", 0.3),
		ModelTimeout:   getDuration("MODEL_TIMEOUT", "120s"),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		IndexPath:      getEnv("INDEX_PATH", "index_store"),
		IndexPoolSize:  getInt("INDEX_POOL_SIZE", 0),
		IndexBatchSize: getInt("INDEX_BATCH_SIZE", 16),

		PerFeedLimit: getInt("FEED_LIMIT", 5),
		LookbackDays: getInt("FEED_LOOKBACK_DAYS", 7),

		IngestInterval: getDuration("INGEST_INTERVAL", "6h"),

		BindAddr:   getEnv("BIND_ADDR", "0.0.0.0:8080"),
		AnswerTopK: getInt("ANSWER_TOP_K", 4),
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return nil, fmt.Errorf("MODEL_TEMPERATURE must be within [0, 2]")
	}
	if c.ModelTimeout <= 0 {
		return nil, fmt.Errorf("MODEL_TIMEOUT must be positive")
	}
	if c.PerFeedLimit <= 0 {
		return nil, fmt.Errorf("FEED_LIMIT must be positive")
	}
	if c.LookbackDays <= 0 {
		return nil, fmt.Errorf("FEED_LOOKBACK_DAYS must be positive")
	}
	if c.IndexBatchSize <= 0 {
		return nil, fmt.Errorf("INDEX_BATCH_SIZE must be positive")
	}
	if c.AnswerTopK <= 0 {
		return nil, fmt.Errorf("ANSWER_TOP_K must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		fd, ferr := time.ParseDuration(fallback)
		if ferr != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, ferr))
		}
		return fd
	}
	return d
}
