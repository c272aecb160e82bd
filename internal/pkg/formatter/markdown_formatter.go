package formatter

import (
	"bytes"
	"fmt"

	"github.com/futig/crop-advisory/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(report *entity.MarketReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", reportTitle(report))

	if report.Notice != "" {
		fmt.Fprintf(&buf, "> %s\n\n", report.Notice)
	}

	if report.Analysis != "" {
		fmt.Fprintf(&buf, "%s\n\n", report.Analysis)
	}

	if len(report.Tables) > 0 {
		buf.WriteString("## Data Tables\n\n")
		for _, t := range report.Tables {
			md, err := TableToMarkdown(t.HTML)
			if err != nil {
				return nil, fmt.Errorf("convert table %s: %w", t.ID, err)
			}
			fmt.Fprintf(&buf, "### %s\n\n%s\n\n", visualizationHeading(t), md)
		}
	}

	if len(report.Charts) > 0 {
		buf.WriteString("## Charts\n\n")
		for _, c := range report.Charts {
			fmt.Fprintf(&buf, "- %s (%s, %.1fKB): interactive, available in the web view\n",
				visualizationHeading(c), c.Category, float64(c.Size)/1000)
		}
		buf.WriteString("\n")
	}

	out := bytes.TrimRight(buf.Bytes(), "\n")
	return append(out, '\n'), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
