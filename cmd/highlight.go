package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/quill/internal/styles"
	"github.com/zjrosen/quill/internal/syntax"
	"github.com/zjrosen/quill/internal/tracing"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Print a syntax-highlighted file to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	rootCmd.AddCommand(highlightCmd)

	highlightCmd.Flags().StringP("language", "l", "",
		"force a highlight language (rust, javascript, go, plain)")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0]) // #nosec G304 -- the user names the file to highlight
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	language, _ := cmd.Flags().GetString("language")
	if language == "" {
		language = cfg.Language
	}
	if language == "" {
		language = syntax.DetectLanguage(args[0])
	}

	theme, err := styles.ApplyTheme(cfg.Theme.Styles())
	if err != nil {
		return err
	}

	tracer, err := tracing.NewProvider(tracing.Config{
		Enabled:     traceFlag,
		Exporter:    "file",
		FilePath:    "quill-traces.jsonl",
		ServiceName: "quill",
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}

	ctx, span := tracer.Tracer().Start(context.Background(), tracing.SpanHighlight,
		trace.WithAttributes(
			attribute.String(tracing.AttrFilePath, args[0]),
			attribute.String(tracing.AttrLanguage, language),
		))
	out := syntax.New(language, theme).Highlight(string(data))
	span.End()

	shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	_ = tracer.Shutdown(shutdownCtx)
	cancel()

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
