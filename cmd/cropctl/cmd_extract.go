package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/futig/crop-advisory/internal/pkg/extractor"
	"github.com/futig/crop-advisory/internal/pkg/formatter"
	"github.com/spf13/cobra"
)

var (
	extractJSON     bool
	extractMarkdown bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract chart and table fragments from generated text",
	Long: `Reads generated text from a file, or stdin when no file is given, and
lists the chart and table fragments found in it followed by the remaining text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print the full extraction result as JSON")
	extractCmd.Flags().BoolVar(&extractMarkdown, "markdown", false, "Render table fragments as markdown tables")
}

func runExtract(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	res := extractor.New().Extract(string(raw))
	out := cmd.OutOrStdout()

	if extractJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(out, "charts: %d, tables: %d\n", len(res.Charts), len(res.Tables))
	for _, c := range res.Charts {
		fmt.Fprintf(out, "  [chart] %s %s (%.1fKB)\n", c.ID, c.Label, float64(c.Size)/1000)
	}
	for _, t := range res.Tables {
		fmt.Fprintf(out, "  [table] %s %s\n", t.ID, t.Label)
		if extractMarkdown {
			md, err := formatter.TableToMarkdown(t.Markup)
			if err != nil {
				return fmt.Errorf("convert table %s: %w", t.ID, err)
			}
			fmt.Fprintf(out, "\n%s\n\n", md)
		}
	}

	if res.Residual != "" {
		fmt.Fprintf(out, "\n%s\n", res.Residual)
	}
	return nil
}
