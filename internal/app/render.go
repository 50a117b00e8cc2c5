package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"chunk_navigator/internal/chunker"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat - формат вывода не поддерживается
var ErrUnknownFormat = errors.New("unknown output format")

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "md", "markdown":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// WriteReport выводит один отчёт
func (a *App) WriteReport(w io.Writer, r *Report, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	default:
		_, err := io.WriteString(w, a.renderReport(r))
		return err
	}
}

// WriteComparison выводит отчёты всех стратегий
func (a *App) WriteComparison(w io.Writer, reports []*Report, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, reports)
	case FormatYAML:
		return writeYAML(w, reports)
	default:
		_, err := io.WriteString(w, a.renderComparison(reports))
		return err
	}
}

// WriteStrategies выводит описания стратегий
func WriteStrategies(w io.Writer, format Format) error {
	var infos []chunker.Info
	for _, s := range chunker.Strategies() {
		info, err := chunker.Describe(s)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, infos)
	case FormatYAML:
		return writeYAML(w, infos)
	}

	var buf strings.Builder
	for _, info := range infos {
		buf.WriteString(fmt.Sprintf("## %s (%s)\n\n", info.Title, info.Strategy))
		buf.WriteString(info.Description + "\n\n")
		writeList(&buf, "Advantages", info.Pros)
		writeList(&buf, "Limitations", info.Cons)
		writeList(&buf, "Best for", info.UseCases)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// WriteSearch выводит результаты поиска
func WriteSearch(w io.Writer, query string, results []SearchResult, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatYAML:
		return writeYAML(w, results)
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("# Search: %s\n\n", query))
	if len(results) == 0 {
		buf.WriteString("No chunks matched.\n")
	}
	for i, r := range results {
		buf.WriteString(fmt.Sprintf("%d. Chunk #%d [%d-%d] (similarity: %.2f)\n", i+1, r.ChunkID+1, r.Start, r.End, r.Similarity))
		buf.WriteString("<<<\n")
		buf.WriteString(r.Text)
		buf.WriteString("\n>>>\n\n")
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func (a *App) renderReport(r *Report) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("# Chunking report: %s\n\n", r.Document))
	buf.WriteString(fmt.Sprintf("**Strategy:** %s (%s)\n\n", r.Label, r.Strategy))
	buf.WriteString(fmt.Sprintf("**Run:** %s at %s\n\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04:05")))

	buf.WriteString("## Summary\n\n")
	buf.WriteString(fmt.Sprintf("- Chunks: %d\n", r.Stats.Count))
	buf.WriteString(fmt.Sprintf("- Avg size: %.0f chars\n", r.Stats.Average))
	buf.WriteString(fmt.Sprintf("- Min/Max: %d/%d chars\n", r.Stats.Min, r.Stats.Max))
	buf.WriteString(fmt.Sprintf("- Tokens: %d\n\n", r.TotalTokens))

	if len(r.Chunks) == 0 {
		buf.WriteString("No chunks generated.\n")
		return buf.String()
	}

	buf.WriteString("## Chunks\n\n")
	for _, c := range r.Chunks {
		buf.WriteString(fmt.Sprintf("### #%d [%d-%d] %dc, %d tokens\n\n", c.ID+1, c.Start, c.End, c.Size, c.Tokens))
		buf.WriteString(fmt.Sprintf("%s\n\n", formatMetadata(c.Metadata)))
		buf.WriteString(fmt.Sprintf("> %s\n\n", preview(c.Text, a.cfg.PreviewChars)))
	}

	return buf.String()
}

func (a *App) renderComparison(reports []*Report) string {
	var buf strings.Builder

	if len(reports) > 0 {
		buf.WriteString(fmt.Sprintf("# Strategy comparison: %s\n\n", reports[0].Document))
	}

	buf.WriteString("| Strategy | Chunks | Avg | Min | Max | Tokens |\n")
	buf.WriteString("|---|---|---|---|---|---|\n")
	for _, r := range reports {
		buf.WriteString(fmt.Sprintf("| %s | %d | %.0f | %d | %d | %d |\n",
			r.Label, r.Stats.Count, r.Stats.Average, r.Stats.Min, r.Stats.Max, r.TotalTokens))
	}
	buf.WriteString("\n")

	// первые чанки каждой стратегии, как в компактном режиме визуализатора
	const firstN = 5
	for _, r := range reports {
		buf.WriteString(fmt.Sprintf("## %s\n\n", r.Label))
		if len(r.Chunks) == 0 {
			buf.WriteString("No chunks generated.\n\n")
			continue
		}
		for _, c := range r.Chunks[:min(firstN, len(r.Chunks))] {
			buf.WriteString(fmt.Sprintf("- #%d (%dc): %s\n", c.ID+1, c.Size, preview(c.Text, a.cfg.PreviewChars)))
		}
		if len(r.Chunks) > firstN {
			buf.WriteString(fmt.Sprintf("- ... %d more\n", len(r.Chunks)-firstN))
		}
		buf.WriteString("\n")
	}

	return buf.String()
}

func writeList(buf *strings.Builder, title string, items []string) {
	buf.WriteString(fmt.Sprintf("**%s:**\n", title))
	for _, item := range items {
		buf.WriteString("- " + item + "\n")
	}
	buf.WriteString("\n")
}

// formatMetadata выводит метаданные в порядке ключей
func formatMetadata(md map[string]any) string {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := md[k].(type) {
		case float64:
			parts = append(parts, fmt.Sprintf("%s=%.2f", k, v))
		case []string:
			parts = append(parts, fmt.Sprintf("%s=%s", k, strings.Join(v, ",")))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}
	return strings.Join(parts, " ")
}

// preview обрезает текст до n символов и сворачивает переводы строк
func preview(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
