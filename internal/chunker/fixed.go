package chunker

// FixedSizeChunker режет текст на последовательные окна длины ChunkSize
type FixedSizeChunker struct {
	config Config
}

// NewFixedSizeChunker создаёт fixed-size chunker
func NewFixedSizeChunker(config Config) *FixedSizeChunker {
	return &FixedSizeChunker{config: config}
}

func (f *FixedSizeChunker) Name() string {
	return string(FixedSize)
}

func (f *FixedSizeChunker) Chunk(text string) ([]Chunk, error) {
	if err := f.config.Validate(FixedSize); err != nil {
		return nil, err
	}

	var chunks []Chunk
	runes := []rune(text)
	size := f.config.ChunkSize

	for i := 0; i < len(runes); i += size {
		end := min(i+size, len(runes))

		chunks = append(chunks, CreateChunk(len(chunks), string(runes[i:end]), i, FixedSize, map[string]any{
			"chunkSize": size,
			"position":  i/size + 1,
		}))
	}

	return chunks, nil
}

// SlidingWindowChunker режет текст на окна длины ChunkSize с шагом ChunkSize-Overlap
type SlidingWindowChunker struct {
	config Config
}

// NewSlidingWindowChunker создаёт sliding-window chunker
func NewSlidingWindowChunker(config Config) *SlidingWindowChunker {
	return &SlidingWindowChunker{config: config}
}

func (s *SlidingWindowChunker) Name() string {
	return string(SlidingWindow)
}

func (s *SlidingWindowChunker) Chunk(text string) ([]Chunk, error) {
	// Validate гарантирует step > 0, иначе цикл не завершится
	if err := s.config.Validate(SlidingWindow); err != nil {
		return nil, err
	}

	var chunks []Chunk
	runes := []rune(text)
	size, overlap := s.config.ChunkSize, s.config.Overlap
	step := size - overlap

	for i := 0; i < len(runes); i += step {
		end := min(i+size, len(runes))

		// Окна не длиннее overlap не выдаём
		if end-i <= overlap {
			continue
		}

		overlapWithPrevious := 0
		if i > 0 {
			overlapWithPrevious = overlap
		}

		chunks = append(chunks, CreateChunk(len(chunks), string(runes[i:end]), i, SlidingWindow, map[string]any{
			"chunkSize":           size,
			"overlap":             overlap,
			"position":            i/step + 1,
			"overlapWithPrevious": overlapWithPrevious,
		}))
	}

	return chunks, nil
}
