package chunker

import "strings"

// Иерархия разделителей: от самого крупного к самому мелкому
var recursiveSeparators = []string{"\n\n", "\n", ". ", " "}

// RecursiveChunker делит текст по иерархии разделителей, жадно склеивая
// соседние части, пока чанк не превышает ChunkSize.
type RecursiveChunker struct {
	config     Config
	separators []string
}

// NewRecursiveChunker создаёт recursive chunker
func NewRecursiveChunker(config Config) *RecursiveChunker {
	return &RecursiveChunker{
		config:     config,
		separators: recursiveSeparators,
	}
}

func (r *RecursiveChunker) Name() string {
	return string(Recursive)
}

func (r *RecursiveChunker) Chunk(text string) ([]Chunk, error) {
	if err := r.config.Validate(Recursive); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	var chunks []Chunk
	for _, p := range r.split(text) {
		chunks = append(chunks, CreateChunk(len(chunks), p.text, p.start, Recursive, map[string]any{
			"level":     len(chunks) + 1,
			"splitType": splitType(p.text),
		}))
	}

	return chunks, nil
}

// part - фрагмент текста и его смещение в исходнике (в символах)
type part struct {
	text  string
	start int
}

// frame - состояние одного уровня разбиения
type frame struct {
	sep      int    // индекс разделителя, которым получены parts
	parts    []part // части текущего уровня
	next     int    // следующая необработанная часть
	buf      string // накопленный чанк, склеенный разделителем sep
	bufStart int
}

// split выполняет разбиение как конечный автомат над стеком frame.
// Переходы: части хватает места - дописываем в буфер; не хватает - сбрасываем
// буфер и либо начинаем новый, либо спускаемся на следующий разделитель,
// либо (разделители кончились) обрезаем часть до ChunkSize.
// Каждый шаг либо потребляет часть, либо снимает frame, поэтому цикл конечен.
func (r *RecursiveChunker) split(text string) []part {
	size := r.config.ChunkSize

	var out []part
	stack := []*frame{{sep: 0, parts: splitParts(text, 0, r.separators[0])}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]

		if f.next == len(f.parts) {
			out = appendPart(out, f.buf, f.bufStart)
			stack = stack[:len(stack)-1]
			continue
		}

		p := f.parts[f.next]
		f.next++

		candidate := p.text
		if f.buf != "" {
			candidate = f.buf + r.separators[f.sep] + p.text
		}

		if runeLen(candidate) <= size {
			if f.buf == "" {
				f.bufStart = p.start
			}
			f.buf = candidate
			continue
		}

		out = appendPart(out, f.buf, f.bufStart)
		f.buf = ""

		switch {
		case runeLen(p.text) <= size:
			f.buf, f.bufStart = p.text, p.start
		case f.sep+1 < len(r.separators):
			stack = append(stack, &frame{
				sep:   f.sep + 1,
				parts: splitParts(p.text, p.start, r.separators[f.sep+1]),
			})
		default:
			out = appendPart(out, truncateRunes(p.text, size), p.start)
		}
	}

	return out
}

// splitParts делит s по sep и запоминает смещение каждой части
func splitParts(s string, start int, sep string) []part {
	pieces := strings.Split(s, sep)
	parts := make([]part, len(pieces))
	sepLen := runeLen(sep)

	at := start
	for i, piece := range pieces {
		parts[i] = part{text: piece, start: at}
		at += runeLen(piece) + sepLen
	}
	return parts
}

// appendPart пропускает пустые и пробельные фрагменты
func appendPart(out []part, text string, start int) []part {
	if strings.TrimSpace(text) == "" {
		return out
	}
	return append(out, part{text: text, start: start})
}

// splitType определяет по содержимому чанка, какой разделитель в нём остался
func splitType(text string) string {
	switch {
	case strings.Contains(text, "\n\n"):
		return "paragraph"
	case strings.Contains(text, "\n"):
		return "line"
	default:
		return "sentence"
	}
}
