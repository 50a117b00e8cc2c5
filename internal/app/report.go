package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"chunk_navigator/internal/chunker"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ChunkView - чанк с числом токенов
type ChunkView struct {
	chunker.Chunk `yaml:",inline"`
	Tokens        int `json:"tokens" yaml:"tokens"`
}

// Report - результат одного прогона стратегии по документу
type Report struct {
	RunID       string           `json:"run_id" yaml:"run_id"`
	Document    string           `json:"document" yaml:"document"`
	Strategy    chunker.Strategy `json:"strategy" yaml:"strategy"`
	Label       string           `json:"label" yaml:"label"`
	ChunkSize   int              `json:"chunk_size" yaml:"chunk_size"`
	Overlap     int              `json:"overlap" yaml:"overlap"`
	Stats       chunker.Stats    `json:"stats" yaml:"stats"`
	TotalTokens int              `json:"total_tokens" yaml:"total_tokens"`
	Chunks      []ChunkView      `json:"chunks" yaml:"chunks"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
}

// Chunk разбивает документ одной стратегией
func (a *App) Chunk(ctx context.Context, doc *Document, strategy chunker.Strategy) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := a.chunkConfig()
	chunks, err := chunker.Split(doc.Text, strategy, cfg, a.chunkOptions()...)
	if err != nil {
		return nil, fmt.Errorf("chunking %s with %s: %w", doc.Name, strategy, err)
	}

	report := &Report{
		RunID:       uuid.NewString(),
		Document:    doc.Name,
		Strategy:    strategy,
		Label:       strategy.Label(),
		ChunkSize:   cfg.ChunkSize,
		Overlap:     cfg.Overlap,
		Stats:       chunker.Summarize(chunks),
		Chunks:      make([]ChunkView, 0, len(chunks)),
		GeneratedAt: time.Now().UTC(),
	}

	for _, c := range chunks {
		n, err := a.tokens.Count(c.Text)
		if err != nil {
			return nil, err
		}
		report.TotalTokens += n
		report.Chunks = append(report.Chunks, ChunkView{Chunk: c, Tokens: n})
	}

	log.Printf("✅ [%s] Created %d chunks (avg %.0f chars)", strategy, report.Stats.Count, report.Stats.Average)
	return report, nil
}

// Compare прогоняет все стратегии по одному документу параллельно.
// Отчёты возвращаются в порядке chunker.Strategies().
func (a *App) Compare(ctx context.Context, doc *Document) ([]*Report, error) {
	strategies := chunker.Strategies()
	reports := make([]*Report, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	if a.cfg.MaxConcurrency > 0 {
		g.SetLimit(a.cfg.MaxConcurrency)
	}

	for i, s := range strategies {
		g.Go(func() error {
			r, err := a.Chunk(gctx, doc, s)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("📊 Compared %d strategies on %s", len(reports), doc.Name)
	return reports, nil
}
