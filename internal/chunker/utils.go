package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	sentenceBoundary  = regexp.MustCompile(`[.!?]+`)
	// \s в RE2 только ASCII: добавляем \v, Unicode-пробелы и BOM
	paragraphBoundary = regexp.MustCompile(`\n[\s\v\p{Z}\x{FEFF}]*\n`)
)

// CreateChunk создаёт чанк и вычисляет Size/End по тексту
func CreateChunk(id int, text string, start int, strategy Strategy, metadata map[string]any) Chunk {
	if metadata == nil {
		metadata = make(map[string]any)
	}

	size := utf8.RuneCountInString(text)

	return Chunk{
		ID:       id,
		Text:     text,
		Start:    start,
		End:      start + size,
		Size:     size,
		Strategy: strategy.Label(),
		Metadata: metadata,
	}
}

// SplitByParagraphs разбивает текст на параграфы по пустым строкам
func SplitByParagraphs(text string) []string {
	return splitTrimmed(text, paragraphBoundary)
}

// SplitBySentences разбивает текст по сериям '.', '!' и '?'
func SplitBySentences(text string) []string {
	return splitTrimmed(text, sentenceBoundary)
}

// CountWords считает слова, разделённые пробельными символами
func CountWords(text string) int {
	return len(strings.Fields(text))
}

func splitTrimmed(text string, boundary *regexp.Regexp) []string {
	var result []string
	for _, p := range boundary.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// locator находит позиции последовательных фрагментов в исходном тексте.
// Фрагменты должны идти в исходном порядке и не пересекаться.
type locator struct {
	text   string
	byteAt int
	runeAt int
}

func newLocator(text string) *locator {
	return &locator{text: text}
}

// locate возвращает смещение фрагмента в символах и сдвигает курсор за него
func (l *locator) locate(segment string) int {
	idx := strings.Index(l.text[l.byteAt:], segment)
	if idx < 0 {
		// фрагмент не из этого текста: оставляем курсор на месте
		return l.runeAt
	}

	l.runeAt += utf8.RuneCountInString(l.text[l.byteAt : l.byteAt+idx])
	l.byteAt += idx
	start := l.runeAt

	l.runeAt += utf8.RuneCountInString(segment)
	l.byteAt += len(segment)

	return start
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateRunes обрезает строку до n символов
func truncateRunes(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
