package app

import (
	"fmt"
	"log"
	"sync"

	"chunk_navigator/internal/chunker"
	"chunk_navigator/internal/config"

	"github.com/tiktoken-go/tokenizer"
)

type App struct {
	cfg      *config.Config
	embedder *Embedder
	tokens   *tokenCounter
}

func New(cfg *config.Config) (*App, error) {
	if cfg.PreviewChars < 0 {
		return nil, fmt.Errorf("preview chars must be non-negative, got %d", cfg.PreviewChars)
	}

	embedder, err := NewEmbedder(cfg.EmbedDims, cfg.EmbedCacheSize)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:      cfg,
		embedder: embedder,
	}

	return app, nil
}

func (a *App) Init() error {
	// Tokenizer is optional; without it reports carry no token counts
	if a.cfg.TokenEncoding == "" {
		log.Printf("Token counting disabled")
		return nil
	}

	enc, err := tokenizer.Get(tokenizer.Encoding(a.cfg.TokenEncoding))
	if err != nil {
		return fmt.Errorf("failed to initialize tokenizer %q: %w", a.cfg.TokenEncoding, err)
	}
	a.tokens = &tokenCounter{codec: enc}

	return nil
}

// chunkConfig переводит настройки приложения в параметры движка
func (a *App) chunkConfig() chunker.Config {
	return chunker.Config{
		ChunkSize: a.cfg.ChunkSize,
		Overlap:   a.cfg.ChunkOverlap,
	}
}

// chunkOptions возвращает опции движка; SemanticSeed=0 оставляет общий генератор
func (a *App) chunkOptions() []chunker.Option {
	if a.cfg.SemanticSeed == 0 {
		return nil
	}
	return []chunker.Option{chunker.WithRand(chunker.NewSeededRand(a.cfg.SemanticSeed))}
}

// tokenCounter сериализует доступ к codec: Compare считает токены из нескольких горутин
type tokenCounter struct {
	mu    sync.Mutex
	codec tokenizer.Codec
}

func (t *tokenCounter) Count(text string) (int, error) {
	if t == nil {
		return 0, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ids, _, err := t.codec.Encode(text)
	if err != nil {
		return 0, fmt.Errorf("failed to count tokens: %w", err)
	}
	return len(ids), nil
}
