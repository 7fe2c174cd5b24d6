package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:11434", c.OllamaHost)
	assert.Equal(t, "llama3.2:3b", c.GeneratorModel)
	assert.Equal(t, "nomic-embed-text", c.EmbeddingModel)
	assert.InDelta(t, 0.3, c.Temperature, 1e-9)
	assert.Equal(t, 120*time.Second, c.ModelTimeout)
	assert.Empty(t, c.PostgresDSN)
	assert.Equal(t, 5, c.PerFeedLimit)
	assert.Equal(t, 7, c.LookbackDays)
	assert.Equal(t, 6*time.Hour, c.IngestInterval)
	assert.Equal(t, 4, c.AnswerTopK)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "http://ollama:11434")
	t.Setenv("MODEL_TEMPERATURE", "0.7")
	t.Setenv("MODEL_TIMEOUT", "30s")
	t.Setenv("POSTGRES_DSN", "postgres://u:p@localhost:5432/observer")
	t.Setenv("FEED_LIMIT", "3")
	t.Setenv("INGEST_INTERVAL", "15m")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://ollama:11434", c.OllamaHost)
	assert.InDelta(t, 0.7, c.Temperature, 1e-9)
	assert.Equal(t, 30*time.Second, c.ModelTimeout)
	assert.Equal(t, "postgres://u:p@localhost:5432/observer", c.PostgresDSN)
	assert.Equal(t, 3, c.PerFeedLimit)
	assert.Equal(t, 15*time.Minute, c.IngestInterval)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("MODEL_TEMPERATURE", "5.0")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	t.Setenv("FEED_LIMIT", "not-a-number")
	t.Setenv("INGEST_INTERVAL", "not-a-duration")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, c.PerFeedLimit)
	assert.Equal(t, 6*time.Hour, c.IngestInterval)
}
