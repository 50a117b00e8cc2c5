package chunker

import (
	"math/rand/v2"
)

// Rand - источник случайности для заглушки semantic-метаданных.
// *rand.Rand из math/rand/v2 подходит напрямую.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand использует общий генератор math/rand/v2
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// NewSeededRand возвращает детерминированный источник для тестов и --seed
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

const (
	minCoherence   = 0.7
	coherenceRange = 0.3
)

var topicKeywords = []string{"AI", "processing", "systems"}

// SemanticChunker делит текст по параграфам и добавляет сигнал связности.
// coherenceScore и topicKeywords - заглушка, а не результат анализа текста.
type SemanticChunker struct {
	rng Rand
}

// NewSemanticChunker создаёт semantic chunker; nil rng означает общий генератор
func NewSemanticChunker(rng Rand) *SemanticChunker {
	if rng == nil {
		rng = globalRand{}
	}
	return &SemanticChunker{rng: rng}
}

func (s *SemanticChunker) Name() string {
	return string(Semantic)
}

func (s *SemanticChunker) Chunk(text string) ([]Chunk, error) {
	var chunks []Chunk
	loc := newLocator(text)

	for i, unit := range SplitByParagraphs(text) {
		chunks = append(chunks, CreateChunk(len(chunks), unit, loc.locate(unit), Semantic, map[string]any{
			"semanticUnit":   i + 1,
			"coherenceScore": s.coherenceScore(),
			"topicKeywords":  s.keywords(),
		}))
	}

	return chunks, nil
}

// coherenceScore лежит в [0.7, 1.0)
func (s *SemanticChunker) coherenceScore() float64 {
	return minCoherence + s.rng.Float64()*coherenceRange
}

func (s *SemanticChunker) keywords() []string {
	n := s.rng.IntN(len(topicKeywords)) + 1
	out := make([]string, n)
	copy(out, topicKeywords[:n])
	return out
}
