package app

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"chunk_navigator/internal/chunker"

	"github.com/philippgille/chromem-go"
)

const collectionName = "chunks"

// SearchResult - чанк, найденный по запросу
type SearchResult struct {
	ChunkID    int     `json:"chunk_id" yaml:"chunk_id"`
	Text       string  `json:"text" yaml:"text"`
	Start      int     `json:"start" yaml:"start"`
	End        int     `json:"end" yaml:"end"`
	Similarity float32 `json:"similarity" yaml:"similarity"`
}

// Search разбивает документ стратегией и ранжирует чанки по запросу.
// Коллекция живёт только в памяти на время вызова.
func (a *App) Search(ctx context.Context, doc *Document, strategy chunker.Strategy, query string) ([]SearchResult, error) {
	report, err := a.Chunk(ctx, doc, strategy)
	if err != nil {
		return nil, err
	}
	if len(report.Chunks) == 0 {
		return nil, nil
	}

	db := chromem.NewDB()
	coll, err := db.CreateCollection(collectionName, map[string]string{"strategy": string(strategy)}, a.embedder.Func())
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	docs := make([]chromem.Document, 0, len(report.Chunks))
	for _, c := range report.Chunks {
		docs = append(docs, chromem.Document{
			ID:       strconv.Itoa(c.ID),
			Content:  c.Text,
			Metadata: map[string]string{"strategy": c.Strategy},
		})
	}
	if err := coll.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("failed to add chunks: %w", err)
	}

	topK := a.cfg.SearchTopK
	if topK <= 0 || topK > coll.Count() {
		topK = coll.Count()
	}

	results, err := coll.Query(ctx, query, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return mapResults(results, report.Chunks)
}

// mapResults сопоставляет найденные документы с чанками отчёта по ID
func mapResults(results []chromem.Result, chunks []ChunkView) ([]SearchResult, error) {
	byID := make(map[int]ChunkView, len(chunks))
	for _, c := range chunks {
		byID[c.ID] = c
	}

	searchResults := make([]SearchResult, 0, len(results))
	for _, r := range results {
		id, err := strconv.Atoi(r.ID)
		if err != nil {
			return nil, fmt.Errorf("bad chunk id %q: %w", r.ID, err)
		}
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown chunk id %d", id)
		}

		searchResults = append(searchResults, SearchResult{
			ChunkID:    c.ID,
			Text:       c.Text,
			Start:      c.Start,
			End:        c.End,
			Similarity: r.Similarity,
		})
	}

	return searchResults, nil
}
