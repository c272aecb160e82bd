package market

import (
	"encoding/json"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/futig/crop-advisory/internal/pkg/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededGenerator() *PlaceholderGenerator {
	return NewPlaceholderGenerator(rand.New(rand.NewPCG(42, 7)), func() time.Time {
		return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	})
}

var yValues = regexp.MustCompile(`y: (\[[0-9,]+\])`)

func TestPlaceholderChart(t *testing.T) {
	chart := seededGenerator().Chart("wheat")

	assert.Equal(t, placeholderChartID, chart.ID)
	assert.Equal(t, placeholderChartType, chart.Type)
	assert.Equal(t, placeholderChartSize, chart.Size)
	assert.Contains(t, chart.HTML, "Wheat Price Trends")
	assert.Contains(t, chart.HTML, "Plotly.newPlot('plotly-chart-wheat'")
	assert.Contains(t, chart.HTML, "https://cdn.plot.ly/plotly-latest.min.js")

	m := yValues.FindStringSubmatch(chart.HTML)
	require.Len(t, m, 2)
	var prices []int
	require.NoError(t, json.Unmarshal([]byte(m[1]), &prices))
	require.Len(t, prices, 12)
	for _, p := range prices {
		assert.GreaterOrEqual(t, p, 2000)
		assert.Less(t, p, 2500)
	}
}

var changeCell = regexp.MustCompile(`color: #[0-9a-f]{6};">([+-]?[0-9]+\.[0-9])%</td><td style="padding: 12px;">(Rising|Declining)<`)

func TestPlaceholderTable(t *testing.T) {
	table := seededGenerator().Table("mustard")

	assert.Equal(t, placeholderTableID, table.ID)
	assert.Equal(t, placeholderTableType, table.Type)
	assert.Equal(t, 6, table.RowCount)
	assert.Contains(t, table.HTML, "Mustard Prices Across States")
	assert.Contains(t, table.HTML, "Last updated: 09/03/2024")
	for _, state := range placeholderStates {
		assert.Contains(t, table.HTML, "<td style=\"padding: 12px; font-weight: 500;\">"+state+"</td>")
	}

	matches := changeCell.FindAllStringSubmatch(table.HTML, -1)
	require.Len(t, matches, 6)
	for _, m := range matches {
		change, err := strconv.ParseFloat(m[1], 64)
		require.NoError(t, err)
		assert.InDelta(t, 0, change, 25)
		if strings.HasPrefix(m[1], "+") {
			assert.Equal(t, "Rising", m[2])
		} else {
			assert.Equal(t, "Declining", m[2])
		}
	}
}

func TestPlaceholderTable_IsExtractable(t *testing.T) {
	table := seededGenerator().Table("corn")

	res := extractor.Extract(table.HTML)

	require.Len(t, res.Tables, 1)
	assert.Equal(t, 7, res.Tables[0].RowCount)
	assert.Equal(t, extractor.CategoryPriceTable, res.Tables[0].Category)
}

func TestPlaceholderAnalysis(t *testing.T) {
	md := seededGenerator().Analysis("sugar")

	assert.True(t, strings.HasPrefix(md, "# Sugar Market Analysis\n\n## Market Overview"))
	assert.Contains(t, md, "typical for sugar.")
	assert.Contains(t, md, "## Key Price Drivers")
	assert.Contains(t, md, "## Regional Variations")
	assert.Contains(t, md, "## Market Outlook")
}

func TestPlaceholderGenerator_Deterministic(t *testing.T) {
	a := seededGenerator().Chart("rice").HTML
	b := seededGenerator().Chart("rice").HTML

	assert.Equal(t, a, b)
}
