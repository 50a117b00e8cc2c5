package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	Strategy       string `env:"CHUNK_STRATEGY" envDefault:"recursive"`
	ChunkSize      int    `env:"CHUNK_SIZE" envDefault:"500"`
	ChunkOverlap   int    `env:"CHUNK_OVERLAP" envDefault:"50"`
	OutputFormat   string `env:"OUTPUT_FORMAT" envDefault:"text"`
	PreviewChars   int    `env:"PREVIEW_CHARS" envDefault:"80"`
	SemanticSeed   uint64 `env:"SEMANTIC_SEED" envDefault:"0"`
	TokenEncoding  string `env:"TOKEN_ENCODING" envDefault:"cl100k_base"`
	SearchTopK     int    `env:"SEARCH_TOP_K" envDefault:"3"`
	EmbedDims      int    `env:"EMBED_DIMENSIONS" envDefault:"256"`
	EmbedCacheSize int    `env:"EMBED_CACHE_SIZE" envDefault:"1024"`
	MaxConcurrency int    `env:"MAX_CONCURRENCY" envDefault:"4"`
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
