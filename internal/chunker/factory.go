package chunker

// Factory создаёт chunker на основе стратегии
type Factory struct {
	config Config
	rng    Rand
}

// Option настраивает Factory
type Option func(*Factory)

// WithRand подменяет источник случайности для semantic-стратегии
func WithRand(rng Rand) Option {
	return func(f *Factory) {
		f.rng = rng
	}
}

// NewFactory создаёт новую фабрику chunker'ов
func NewFactory(config Config, opts ...Option) *Factory {
	f := &Factory{config: config}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetChunker возвращает chunker для стратегии, предварительно проверив параметры
func (f *Factory) GetChunker(strategy Strategy) (Chunker, error) {
	if err := f.config.Validate(strategy); err != nil {
		return nil, err
	}

	switch strategy {
	case FixedSize:
		return NewFixedSizeChunker(f.config), nil
	case SlidingWindow:
		return NewSlidingWindowChunker(f.config), nil
	case Sentence:
		return NewSentenceChunker(), nil
	case Paragraph:
		return NewParagraphChunker(), nil
	case Semantic:
		return NewSemanticChunker(f.rng), nil
	default:
		return NewRecursiveChunker(f.config), nil
	}
}

// GetChunkerByMethod возвращает chunker по названию стратегии
func (f *Factory) GetChunkerByMethod(method string) (Chunker, error) {
	strategy, err := ParseStrategy(method)
	if err != nil {
		return nil, err
	}
	return f.GetChunker(strategy)
}

// Split разбивает text выбранной стратегией. Пустой текст даёт пустой список;
// неверные параметры дают ошибку до создания первого чанка.
func Split(text string, strategy Strategy, config Config, opts ...Option) ([]Chunk, error) {
	c, err := NewFactory(config, opts...).GetChunker(strategy)
	if err != nil {
		return nil, err
	}

	if text == "" {
		return []Chunk{}, nil
	}

	chunks, err := c.Chunk(text)
	if err != nil {
		return nil, err
	}
	if chunks == nil {
		chunks = []Chunk{}
	}
	return chunks, nil
}
