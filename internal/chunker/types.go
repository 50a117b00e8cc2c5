package chunker

import (
	"fmt"
	"strings"
)

// Chunk представляет один фрагмент исходного текста
type Chunk struct {
	ID       int            `json:"id" yaml:"id"`             // Порядковый номер в пределах одного запуска (с нуля)
	Text     string         `json:"text" yaml:"text"`         // Текст чанка
	Start    int            `json:"start" yaml:"start"`       // Смещение начала в символах
	End      int            `json:"end" yaml:"end"`           // Смещение конца в символах (не включая)
	Size     int            `json:"size" yaml:"size"`         // Длина текста в символах
	Strategy string         `json:"strategy" yaml:"strategy"` // Название стратегии для отображения
	Metadata map[string]any `json:"metadata" yaml:"metadata"` // Метаданные, зависящие от стратегии
}

// Chunker - интерфейс для всех стратегий разбиения
type Chunker interface {
	// Chunk разбивает текст на чанки
	Chunk(text string) ([]Chunk, error)

	// Name возвращает название стратегии для логирования
	Name() string
}

// Config содержит общие параметры для chunker'ов
type Config struct {
	ChunkSize int // Максимальный размер чанка в символах
	Overlap   int // Размер overlap между чанками (только sliding-window)
}

// Strategy - закрытое перечисление поддерживаемых стратегий
type Strategy string

const (
	FixedSize     Strategy = "fixed-size"
	Semantic      Strategy = "semantic"
	Sentence      Strategy = "sentence"
	Paragraph     Strategy = "paragraph"
	SlidingWindow Strategy = "sliding-window"
	Recursive     Strategy = "recursive"
)

var allStrategies = []Strategy{FixedSize, Semantic, Sentence, Paragraph, SlidingWindow, Recursive}

// Strategies возвращает все стратегии в порядке отображения
func Strategies() []Strategy {
	out := make([]Strategy, len(allStrategies))
	copy(out, allStrategies)
	return out
}

// ParseStrategy переводит строку в Strategy
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

func (s Strategy) Valid() bool {
	for _, known := range allStrategies {
		if s == known {
			return true
		}
	}
	return false
}

// Label возвращает человекочитаемое название, которое пишется в Chunk.Strategy
func (s Strategy) Label() string {
	switch s {
	case FixedSize:
		return "Fixed Size"
	case Semantic:
		return "Semantic"
	case Sentence:
		return "Sentence-based"
	case Paragraph:
		return "Paragraph-based"
	case SlidingWindow:
		return "Sliding Window"
	case Recursive:
		return "Recursive Character"
	default:
		return string(s)
	}
}

// usesChunkSize сообщает, зависит ли стратегия от ChunkSize
func (s Strategy) usesChunkSize() bool {
	return s == FixedSize || s == SlidingWindow || s == Recursive
}

func (s Strategy) String() string {
	return string(s)
}
