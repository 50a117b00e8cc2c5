package chunker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration - параметры не позволяют выполнить разбиение
	ErrInvalidConfiguration = errors.New("invalid chunking configuration")

	// ErrUnknownStrategy - стратегия не входит в перечисление
	ErrUnknownStrategy = errors.New("unknown chunking strategy")
)

// Validate проверяет параметры для указанной стратегии
func (c Config) Validate(strategy Strategy) error {
	if !strategy.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}

	if strategy.usesChunkSize() && c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfiguration, c.ChunkSize)
	}

	if strategy == SlidingWindow {
		if c.Overlap < 0 {
			return fmt.Errorf("%w: overlap must be non-negative, got %d", ErrInvalidConfiguration, c.Overlap)
		}
		if step := c.ChunkSize - c.Overlap; step <= 0 {
			return fmt.Errorf("%w: overlap %d must be less than chunk size %d", ErrInvalidConfiguration, c.Overlap, c.ChunkSize)
		}
	}

	return nil
}
