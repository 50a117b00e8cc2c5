package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chunk_navigator/internal/app"
	"chunk_navigator/internal/chunker"
	"chunk_navigator/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfg        config.Config
	strategy   string
	outputFile string
	format     string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chunk_navigator",
	Short: "Split documents into chunks with different strategies",
	Long: `chunk_navigator splits plain text and markdown documents into chunks
using one of six strategies (fixed-size, semantic, sentence, paragraph,
sliding-window, recursive) and reports sizes, positions and metadata.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			log.SetOutput(io.Discard)
		}
		return nil
	},
}

var chunkCmd = &cobra.Command{
	Use:   "chunk FILE",
	Short: "Chunk a document with one strategy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App, f app.Format, out io.Writer) error {
			s, err := chunker.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			doc, err := app.LoadDocument(args[0])
			if err != nil {
				return err
			}
			report, err := a.Chunk(ctx, doc, s)
			if err != nil {
				return err
			}
			return a.WriteReport(out, report, f)
		})
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare FILE",
	Short: "Chunk a document with every strategy side by side",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App, f app.Format, out io.Writer) error {
			doc, err := app.LoadDocument(args[0])
			if err != nil {
				return err
			}
			reports, err := a.Compare(ctx, doc)
			if err != nil {
				return err
			}
			return a.WriteComparison(out, reports, f)
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search FILE QUERY",
	Short: "Preview retrieval: rank the chunks of a document against a query",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App, f app.Format, out io.Writer) error {
			s, err := chunker.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			doc, err := app.LoadDocument(args[0])
			if err != nil {
				return err
			}
			results, err := a.Search(ctx, doc, s, args[1])
			if err != nil {
				return err
			}
			return app.WriteSearch(out, args[1], results, f)
		})
	},
}

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "Describe the available chunking strategies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := app.ParseFormat(format)
		if err != nil {
			return err
		}
		return app.WriteStrategies(cmd.OutOrStdout(), f)
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Read file paths or text from stdin and chunk each line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App, f app.Format, out io.Writer) error {
			s, err := chunker.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			return a.Run(ctx, cmd.InOrStdin(), out, s, f)
		})
	},
}

func init() {
	// Загружаем .env (опционально) до чтения значений по умолчанию
	_ = godotenv.Load()

	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rootCmd.PersistentFlags().StringVarP(&strategy, "strategy", "s", cfg.Strategy, "chunking strategy")
	rootCmd.PersistentFlags().IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "chunk size in characters")
	rootCmd.PersistentFlags().IntVar(&cfg.ChunkOverlap, "overlap", cfg.ChunkOverlap, "overlap in characters (sliding-window)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.SemanticSeed, "seed", cfg.SemanticSeed, "seed for semantic metadata (0 = random)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", cfg.OutputFormat, "output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	searchCmd.Flags().IntVarP(&cfg.SearchTopK, "top-k", "k", cfg.SearchTopK, "number of chunks to return")

	rootCmd.AddCommand(chunkCmd, compareCmd, searchCmd, strategiesCmd, interactiveCmd)
}

// withApp создаёт App, открывает вывод и выполняет fn с контекстом сигналов
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App, f app.Format, out io.Writer) error) error {
	f, err := app.ParseFormat(format)
	if err != nil {
		return err
	}

	a, err := app.New(&cfg)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	if err := a.Init(); err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	// Контекст с сигналами завершения
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fn(ctx, a, f, out); err != nil {
		return err
	}

	if outputFile != "" {
		log.Printf("💾 Results saved to: %s", outputFile)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
