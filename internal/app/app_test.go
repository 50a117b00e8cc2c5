package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chunk_navigator/internal/chunker"
	"chunk_navigator/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testText = "Cats purr softly when they are happy.\n\n" +
	"Rockets launch into orbit from the coast. Engines roar!\n\n" +
	"Bread needs yeast and patience? Always."

func newTestApp(t *testing.T, mutate ...func(*config.Config)) *App {
	t.Helper()

	cfg := &config.Config{
		Strategy:       "recursive",
		ChunkSize:      40,
		ChunkOverlap:   10,
		OutputFormat:   "text",
		PreviewChars:   30,
		SemanticSeed:   1,
		TokenEncoding:  "cl100k_base",
		SearchTopK:     3,
		EmbedDims:      256,
		EmbedCacheSize: 64,
		MaxConcurrency: 2,
	}
	for _, m := range mutate {
		m(cfg)
	}

	a, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, a.Init())
	return a
}

func TestNew_RejectsNegativePreview(t *testing.T) {
	_, err := New(&config.Config{PreviewChars: -1})
	assert.Error(t, err)
}

func TestInit_UnknownEncoding(t *testing.T) {
	a, err := New(&config.Config{TokenEncoding: "no_such_encoding"})
	require.NoError(t, err)
	assert.Error(t, a.Init())
}

func TestApp_Chunk(t *testing.T) {
	a := newTestApp(t)
	doc := &Document{Name: "animals.txt", Text: testText}

	report, err := a.Chunk(context.Background(), doc, chunker.Paragraph)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "animals.txt", report.Document)
	assert.Equal(t, chunker.Paragraph, report.Strategy)
	assert.Equal(t, "Paragraph-based", report.Label)
	require.Len(t, report.Chunks, 3)
	assert.Equal(t, 3, report.Stats.Count)

	total := 0
	for _, c := range report.Chunks {
		assert.Positive(t, c.Tokens)
		total += c.Tokens
	}
	assert.Equal(t, total, report.TotalTokens)
}

func TestApp_Chunk_WithoutTokenizer(t *testing.T) {
	a, err := New(&config.Config{ChunkSize: 10})
	require.NoError(t, err)

	report, err := a.Chunk(context.Background(), &Document{Name: "x", Text: "hello world"}, chunker.FixedSize)
	require.NoError(t, err)
	assert.Len(t, report.Chunks, 2)
	assert.Zero(t, report.TotalTokens)
}

func TestApp_Chunk_InvalidConfig(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) {
		c.ChunkSize = 10
		c.ChunkOverlap = 10
	})

	_, err := a.Chunk(context.Background(), &Document{Name: "x", Text: testText}, chunker.SlidingWindow)
	assert.ErrorIs(t, err, chunker.ErrInvalidConfiguration)
}

func TestApp_Chunk_CancelledContext(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Chunk(ctx, &Document{Name: "x", Text: testText}, chunker.Sentence)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_Chunk_SeedPinsSemantic(t *testing.T) {
	a := newTestApp(t)
	doc := &Document{Name: "x", Text: testText}

	first, err := a.Chunk(context.Background(), doc, chunker.Semantic)
	require.NoError(t, err)
	second, err := a.Chunk(context.Background(), doc, chunker.Semantic)
	require.NoError(t, err)

	require.Equal(t, len(first.Chunks), len(second.Chunks))
	for i := range first.Chunks {
		assert.Equal(t, first.Chunks[i].Metadata, second.Chunks[i].Metadata)
	}
}

func TestApp_Compare(t *testing.T) {
	a := newTestApp(t)
	doc := &Document{Name: "x", Text: testText}

	reports, err := a.Compare(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, reports, len(chunker.Strategies()))

	for i, s := range chunker.Strategies() {
		require.NotNil(t, reports[i])
		assert.Equal(t, s, reports[i].Strategy)
		assert.NotEmpty(t, reports[i].Chunks)
	}
}

func TestApp_Compare_PropagatesErrors(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) { c.ChunkOverlap = 40 })

	_, err := a.Compare(context.Background(), &Document{Name: "x", Text: testText})
	assert.ErrorIs(t, err, chunker.ErrInvalidConfiguration)
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()

	t.Run("plain text", func(t *testing.T) {
		path := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte(testText), 0o644))

		doc, err := LoadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, "notes.txt", doc.Name)
		assert.Equal(t, testText, doc.Text)
	})

	t.Run("markdown", func(t *testing.T) {
		path := filepath.Join(dir, "guide.md")
		require.NoError(t, os.WriteFile(path, []byte("# Guide\n\nSome *styled* text\nspanning lines.\n"), 0o644))

		doc, err := LoadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, "Guide\n\nSome styled text\nspanning lines.", doc.Text)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := LoadDocument(filepath.Join(dir, "scan.pdf"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadDocument(filepath.Join(dir, "absent.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestMarkdownToText(t *testing.T) {
	md := "# Title\n\nFirst para\nline two.\n\n- item one\n- item two\n\n```\ncode here\n```\n\nUse `go test` often.\n"

	got := markdownToText(md)
	assert.Equal(t, "Title\n\nFirst para\nline two.\n\nitem one\n\nitem two\n\ncode here\n\nUse go test often.", got)

	chunks, err := chunker.Split(got, chunker.Paragraph, chunker.Config{})
	require.NoError(t, err)
	assert.Len(t, chunks, 6)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"text":     FormatText,
		"markdown": FormatText,
		"JSON":     FormatJSON,
		"yml":      FormatYAML,
		"yaml":     FormatYAML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteReport(t *testing.T) {
	a := newTestApp(t)
	report, err := a.Chunk(context.Background(), &Document{Name: "doc.txt", Text: testText}, chunker.Sentence)
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, a.WriteReport(&buf, report, FormatText))

		out := buf.String()
		assert.Contains(t, out, "# Chunking report: doc.txt")
		assert.Contains(t, out, "**Strategy:** Sentence-based (sentence)")
		assert.Contains(t, out, "### #1 [0-36]")
		assert.Contains(t, out, "sentenceNumber=1 wordCount=7")
		assert.Contains(t, out, "> Rockets launch into orbit from...")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, a.WriteReport(&buf, report, FormatJSON))

		var decoded struct {
			Strategy string `json:"strategy"`
			Chunks   []struct {
				ID       int            `json:"id"`
				Text     string         `json:"text"`
				Tokens   int            `json:"tokens"`
				Metadata map[string]any `json:"metadata"`
			} `json:"chunks"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "sentence", decoded.Strategy)
		require.Len(t, decoded.Chunks, len(report.Chunks))
		assert.Equal(t, "Cats purr softly when they are happy", decoded.Chunks[0].Text)
		assert.Positive(t, decoded.Chunks[0].Tokens)
		assert.EqualValues(t, 7, decoded.Chunks[0].Metadata["wordCount"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, a.WriteReport(&buf, report, FormatYAML))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "sentence", decoded["strategy"])
		chunks, ok := decoded["chunks"].([]any)
		require.True(t, ok)
		first := chunks[0].(map[string]any)
		assert.Equal(t, "Cats purr softly when they are happy", first["text"])
		assert.Equal(t, 0, first["id"])
	})
}

func TestWriteComparison_Text(t *testing.T) {
	a := newTestApp(t)
	reports, err := a.Compare(context.Background(), &Document{Name: "doc.txt", Text: testText})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.WriteComparison(&buf, reports, FormatText))

	out := buf.String()
	assert.Contains(t, out, "# Strategy comparison: doc.txt")
	for _, s := range chunker.Strategies() {
		assert.Contains(t, out, "| "+s.Label()+" |")
	}
}

func TestWriteStrategies(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStrategies(&buf, FormatText))
	out := buf.String()
	assert.Contains(t, out, "## Sliding Window (sliding-window)")
	assert.Contains(t, out, "**Advantages:**")

	buf.Reset()
	require.NoError(t, WriteStrategies(&buf, FormatJSON))
	var infos []chunker.Info
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	assert.Len(t, infos, 6)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b c", preview("a\n\nb\tc", 10))
	assert.Equal(t, "abc...", preview("abcdef", 3))
	assert.Equal(t, "abcdef", preview("abcdef", 0))
}

func TestRun(t *testing.T) {
	a := newTestApp(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "story.txt")
	require.NoError(t, os.WriteFile(path, []byte("One. Two."), 0o644))

	in := strings.NewReader("\nquick line of text\n" + path + "\n")
	var out bytes.Buffer

	require.NoError(t, a.Run(context.Background(), in, &out, chunker.Sentence, FormatText))
	assert.Contains(t, out.String(), "# Chunking report: input")
	assert.Contains(t, out.String(), "# Chunking report: story.txt")
}

func TestRun_ReportsLineErrors(t *testing.T) {
	a := newTestApp(t)

	path := filepath.Join(t.TempDir(), "scan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	in := strings.NewReader(path + "\nstill going\n")
	var out bytes.Buffer

	require.NoError(t, a.Run(context.Background(), in, &out, chunker.Sentence, FormatText))
	assert.Contains(t, out.String(), "❌ "+path+": ")
	assert.Contains(t, out.String(), ErrUnsupportedFormat.Error())
	assert.Contains(t, out.String(), "# Chunking report: input")
}

func TestRun_StopsOnCancel(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, a.Run(ctx, strings.NewReader("text\n"), &out, chunker.Sentence, FormatText))
	assert.Empty(t, out.String())
}
