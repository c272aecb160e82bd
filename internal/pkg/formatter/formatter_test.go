package formatter

import (
	"bytes"
	"testing"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *entity.MarketReport {
	return &entity.MarketReport{
		Crop:     "wheat",
		Analysis: "## Market Overview\n\nPrices are **firm** across north India.",
		Tables: []entity.Visualization{{
			ID:   "table-0-0-abc",
			Kind: "table",
			HTML: "<table><tr><th>State</th><th>Price</th></tr><tr><td>Punjab</td><td>2250</td></tr></table>",
			Type: "Price Data Table (2 rows)",
		}},
		Charts: []entity.Visualization{{
			ID:       "chart-1-0-abc",
			Kind:     "chart",
			Type:     "Plotly.js Chart",
			Category: "Plotly.js Chart",
			Title:    "Wheat price trend",
			Size:     1500,
		}},
	}
}

func TestFactory_Create(t *testing.T) {
	f := NewFactory()

	md, err := f.Create(entity.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, ".md", md.FileExtension())

	pdf, err := f.Create(entity.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType())

	_, err = f.Create(entity.ResultFormat("docx"))
	assert.ErrorIs(t, err, entity.ErrInvalidFormat)
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(sampleReport())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# Wheat Market Intelligence")
	assert.Contains(t, text, "Prices are **firm**")
	assert.Contains(t, text, "### Price Data Table (2 rows)")
	assert.Contains(t, text, "| State | Price |")
	assert.Contains(t, text, "| Punjab | 2250 |")
	assert.Contains(t, text, "- Wheat price trend (Plotly.js Chart, 1.5KB)")
	assert.NotContains(t, text, "<table>")
}

func TestMarkdownFormatter_Notice(t *testing.T) {
	r := sampleReport()
	r.Notice = "Empty response received from API"

	out, err := NewMarkdownFormatter().Format(r)

	require.NoError(t, err)
	assert.Contains(t, string(out), "> Empty response received from API")
}

func TestPDFFormatter(t *testing.T) {
	out, err := NewPDFFormatter().Format(sampleReport())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestTableCells(t *testing.T) {
	rows := tableCells("<table><tr><th> State </th><th>Change\n %</th></tr><tr><td>Gujarat</td><td>-1.2</td></tr></table>")

	assert.Equal(t, [][]string{{"State", "Change %"}, {"Gujarat", "-1.2"}}, rows)
}
