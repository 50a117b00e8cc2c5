package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	cfg := Config{}
	require.NoError(t, Init(&cfg))

	assert.Equal(t, "recursive", cfg.Strategy)
	assert.Equal(t, 500, cfg.ChunkSize)
	assert.Equal(t, 50, cfg.ChunkOverlap)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, 80, cfg.PreviewChars)
	assert.Equal(t, uint64(0), cfg.SemanticSeed)
	assert.Equal(t, "cl100k_base", cfg.TokenEncoding)
	assert.Equal(t, 3, cfg.SearchTopK)
	assert.Equal(t, 256, cfg.EmbedDims)
	assert.Equal(t, 1024, cfg.EmbedCacheSize)
	assert.Equal(t, 4, cfg.MaxConcurrency)
}

func TestInit_FromEnv(t *testing.T) {
	t.Setenv("CHUNK_STRATEGY", "sliding-window")
	t.Setenv("CHUNK_SIZE", "120")
	t.Setenv("CHUNK_OVERLAP", "20")
	t.Setenv("OUTPUT_FORMAT", "yaml")
	t.Setenv("SEMANTIC_SEED", "99")

	cfg := Config{}
	require.NoError(t, Init(&cfg))

	assert.Equal(t, "sliding-window", cfg.Strategy)
	assert.Equal(t, 120, cfg.ChunkSize)
	assert.Equal(t, 20, cfg.ChunkOverlap)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, uint64(99), cfg.SemanticSeed)
}

func TestInit_BadValue(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "large")

	cfg := Config{}
	assert.Error(t, Init(&cfg))
}
