package chunker

// Info описывает стратегию для вывода пользователю
type Info struct {
	Strategy    Strategy `json:"strategy" yaml:"strategy"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Pros        []string `json:"pros" yaml:"pros"`
	Cons        []string `json:"cons" yaml:"cons"`
	UseCases    []string `json:"use_cases" yaml:"use_cases"`
}

var strategyInfo = map[Strategy]Info{
	FixedSize: {
		Title:       "Fixed Size Chunking",
		Description: "Divides text into chunks of predetermined size, measured in characters.",
		Pros:        []string{"Predictable chunk sizes", "Simple to implement", "Consistent memory usage", "Fast processing"},
		Cons:        []string{"May break sentences mid-way", "Ignores semantic boundaries", "Can split related concepts", "Poor context preservation"},
		UseCases:    []string{"Large document processing", "Memory-constrained environments", "When speed is priority", "Uniform chunk requirements"},
	},
	Semantic: {
		Title:       "Semantic Chunking",
		Description: "Breaks text at paragraph boundaries and attaches a placeholder coherence signal.",
		Pros:        []string{"Preserves meaning and context", "Natural content boundaries", "Better retrieval relevance", "Concept coherence"},
		Cons:        []string{"Variable chunk sizes", "Computationally expensive", "Requires NLP processing", "Complex implementation"},
		UseCases:    []string{"Question-answering systems", "Content summarization", "Academic document processing", "Knowledge extraction"},
	},
	Sentence: {
		Title:       "Sentence-based Chunking",
		Description: "Splits text at sentence boundaries, so each chunk holds one complete sentence.",
		Pros:        []string{"Complete thoughts preserved", "Natural reading flow", "Good for QA systems", "Maintains grammar"},
		Cons:        []string{"Highly variable sizes", "May be too granular", "Complex sentences issues", "Limited context window"},
		UseCases:    []string{"Conversational AI", "Fine-grained search", "Sentence similarity", "Educational content"},
	},
	Paragraph: {
		Title:       "Paragraph-based Chunking",
		Description: "Divides text into chunks based on paragraph boundaries, maintaining topical coherence.",
		Pros:        []string{"Topical coherence", "Natural content structure", "Good context preservation", "Reader-friendly chunks"},
		Cons:        []string{"Very variable sizes", "May be too large", "Depends on formatting", "Inconsistent boundaries"},
		UseCases:    []string{"Document summarization", "Topic modeling", "Content analysis", "Blog post processing"},
	},
	SlidingWindow: {
		Title:       "Sliding Window",
		Description: "Creates overlapping chunks so information at boundaries is not lost.",
		Pros:        []string{"Context preservation", "Reduced information loss", "Better boundary handling", "Improved retrieval"},
		Cons:        []string{"Data redundancy", "Increased storage", "Processing overhead", "Duplicate information"},
		UseCases:    []string{"Critical information retrieval", "Medical documents", "Legal text processing", "Technical documentation"},
	},
	Recursive: {
		Title:       "Recursive Character Splitting",
		Description: "Hierarchically splits text using multiple separators, preferring the coarsest boundary that fits.",
		Pros:        []string{"Flexible approach", "Maintains structure", "Good size control", "Semantic awareness"},
		Cons:        []string{"Complex implementation", "Processing overhead", "Parameter tuning needed", "Variable performance"},
		UseCases:    []string{"Code documentation", "Structured documents", "Multi-format content", "Hierarchical data"},
	},
}

// Describe возвращает описание стратегии; для неизвестной - ErrUnknownStrategy
func Describe(s Strategy) (Info, error) {
	info, ok := strategyInfo[s]
	if !ok {
		return Info{}, ErrUnknownStrategy
	}
	info.Strategy = s
	return info, nil
}
