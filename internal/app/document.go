package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat - файл не является текстом или markdown
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Document - исходный текст и его имя для отчётов
type Document struct {
	Name string
	Text string
}

// LoadDocument читает .txt/.md файл; "-" означает stdin
func LoadDocument(path string) (*Document, error) {
	if path == "-" {
		return ReadDocument(os.Stdin, "stdin", false)
	}

	var markdown bool
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".md", ".markdown":
		markdown = true
	case ".txt", ".text", "":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	return ReadDocument(f, filepath.Base(path), markdown)
}

// ReadDocument читает документ из r; markdown переводится в plain text
func ReadDocument(r io.Reader, name string, markdown bool) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	content := string(raw)
	if markdown {
		content = markdownToText(content)
	}

	log.Printf("📄 [%s] Loaded %d bytes", name, len(content))

	return &Document{Name: name, Text: content}, nil
}
