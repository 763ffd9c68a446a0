package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/styles"
	"github.com/zjrosen/quill/internal/ui/markdown"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in theme presets",
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, _ []string) error {
	names := make([]string, 0, len(styles.Presets))
	for name := range styles.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("# Themes\n\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "- **%s**: %s\n", name, styles.Presets[name].Description)
	}
	sb.WriteString("\nSet one in your config under `theme: preset:`, or cycle with Ctrl+T.\n")

	style := "dark"
	if cfg.Theme.Mode == "light" {
		style = "light"
	}
	renderer, err := markdown.New(80, style)
	if err != nil {
		return err
	}
	out, err := renderer.Render(sb.String())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
