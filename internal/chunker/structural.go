package chunker

// SentenceChunker выдаёт по чанку на каждое предложение
type SentenceChunker struct{}

// NewSentenceChunker создаёт sentence chunker
func NewSentenceChunker() *SentenceChunker {
	return &SentenceChunker{}
}

func (s *SentenceChunker) Name() string {
	return string(Sentence)
}

func (s *SentenceChunker) Chunk(text string) ([]Chunk, error) {
	var chunks []Chunk
	loc := newLocator(text)

	for i, sentence := range SplitBySentences(text) {
		chunks = append(chunks, CreateChunk(len(chunks), sentence, loc.locate(sentence), Sentence, map[string]any{
			"sentenceNumber": i + 1,
			"wordCount":      CountWords(sentence),
		}))
	}

	return chunks, nil
}

// ParagraphChunker выдаёт по чанку на каждый параграф
type ParagraphChunker struct{}

// NewParagraphChunker создаёт paragraph chunker
func NewParagraphChunker() *ParagraphChunker {
	return &ParagraphChunker{}
}

func (p *ParagraphChunker) Name() string {
	return string(Paragraph)
}

func (p *ParagraphChunker) Chunk(text string) ([]Chunk, error) {
	var chunks []Chunk
	loc := newLocator(text)

	for i, paragraph := range SplitByParagraphs(text) {
		chunks = append(chunks, CreateChunk(len(chunks), paragraph, loc.locate(paragraph), Paragraph, map[string]any{
			"paragraphNumber": i + 1,
			"sentenceCount":   len(SplitBySentences(paragraph)),
		}))
	}

	return chunks, nil
}
