package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"chunk_navigator/internal/chunker"
)

// Run читает строки из in: путь к файлу разбивается целиком, остальное
// считается текстом. Результат или ошибка каждой строки пишется в out.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer, strategy chunker.Strategy, format Format) error {
	log.Println("Application started")
	log.Println("Enter a file path or text to chunk (one per line). Ctrl+C to exit.")

	scanner := bufio.NewScanner(in)

	// Увеличим буфер, если строки будут длинные
	const maxLineSize = 1024 * 1024
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down application")
			return nil
		default:
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("stdin error: %w", err)
				}
				log.Println("stdin closed")
				return nil
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if err := a.handleLine(ctx, out, line, strategy, format); err != nil {
				log.Printf("❌ Processing failed: %v", err)
				// лог может быть отключён, поэтому ошибку видно и в out
				if _, werr := fmt.Fprintf(out, "❌ %s: %v\n", line, err); werr != nil {
					return fmt.Errorf("write error: %w", werr)
				}
			}
		}
	}
}

func (a *App) handleLine(ctx context.Context, out io.Writer, line string, strategy chunker.Strategy, format Format) error {
	doc := &Document{Name: "input", Text: line}

	if info, err := os.Stat(line); err == nil && !info.IsDir() {
		doc, err = LoadDocument(line)
		if err != nil {
			return err
		}
	}

	report, err := a.Chunk(ctx, doc, strategy)
	if err != nil {
		return err
	}
	return a.WriteReport(out, report, format)
}
