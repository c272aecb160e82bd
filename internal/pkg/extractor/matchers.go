package extractor

import (
	"fmt"
	"regexp"
	"strings"
)

type resolver func(markup string) Category

type matcher struct {
	name    string
	pattern *regexp.Regexp
	resolve resolver
}

// chartMatchers run from the most specific shape to the most generic one.
var chartMatchers = []matcher{
	{
		name:    "document",
		pattern: regexp.MustCompile(`(?i)<!DOCTYPE html>[\s\S]*?</html>`),
		resolve: classifyChart,
	},
	{
		name:    "plotly",
		pattern: regexp.MustCompile(`(?i)<div[^>]*id[^>]*plotly[^>]*>[\s\S]*?<script[\s\S]*?Plotly\.newPlot[\s\S]*?</script>`),
		resolve: classifyChart,
	},
	{
		name:    "chartjs",
		pattern: regexp.MustCompile(`(?i)<canvas[^>]*>[\s\S]*?</canvas>[\s\S]*?<script[\s\S]*?Chart[\s\S]*?</script>`),
		resolve: classifyChart,
	},
	{
		name:    "d3",
		pattern: regexp.MustCompile(`(?i)<div[^>]*>[\s\S]*?<script[\s\S]*?d3\.[\s\S]*?</script>[\s\S]*?</div>`),
		resolve: classifyChart,
	},
	{
		name:    "svg",
		pattern: regexp.MustCompile(`(?i)<svg[\s\S]*?</svg>`),
		resolve: classifyChart,
	},
	{
		name:    "container",
		pattern: regexp.MustCompile(`(?i)<div[^>]*(?:chart|graph|plot|visualization)[^>]*>[\s\S]*?<script[\s\S]*?</script>[\s\S]*?</div>`),
		resolve: classifyChart,
	},
	{
		name:    "script",
		pattern: regexp.MustCompile(`(?i)<script[\s\S]*?(?:Chart|Plotly|d3|visualization)[\s\S]*?</script>`),
		resolve: classifyChart,
	},
}

var tableMatchers = []matcher{
	{
		name:    "table",
		pattern: regexp.MustCompile(`(?i)<table[\s\S]*?</table>`),
		resolve: classifyTable,
	},
	{
		name:    "wrapped-table",
		pattern: regexp.MustCompile(`(?i)<div[^>]*(?:table|data)[^>]*>[\s\S]*?<table[\s\S]*?</table>[\s\S]*?</div>`),
		resolve: classifyTable,
	},
}

var rowMarker = regexp.MustCompile(`(?i)<tr`)

type signature struct {
	needles  []string
	category Category
}

var chartSignatures = []signature{
	{needles: []string{"plotly.newplot", "plotly.js"}, category: CategoryPlotly},
	{needles: []string{"chart.js", "new chart("}, category: CategoryChartJS},
	{needles: []string{"d3.", "d3js"}, category: CategoryD3},
	{needles: []string{"<svg"}, category: CategorySVG},
	{needles: []string{"<canvas"}, category: CategoryCanvas},
	{needles: []string{"<!doctype"}, category: CategoryHTMLPage},
	{needles: []string{"visualization", "chart"}, category: CategoryInteractive},
}

var tableSignatures = []signature{
	{needles: []string{"price", "cost"}, category: CategoryPriceTable},
	{needles: []string{"state", "region"}, category: CategoryRegionalTable},
	{needles: []string{"trend", "forecast"}, category: CategoryTrendTable},
}

func classifyChart(markup string) Category {
	return firstSignature(markup, chartSignatures, CategoryGenericVisualization)
}

func classifyTable(markup string) Category {
	return firstSignature(markup, tableSignatures, CategoryDataTable)
}

func firstSignature(markup string, signatures []signature, fallback Category) Category {
	lower := strings.ToLower(markup)
	for _, sig := range signatures {
		for _, needle := range sig.needles {
			if strings.Contains(lower, needle) {
				return sig.category
			}
		}
	}
	return fallback
}

// CountRows returns the number of <tr occurrences, case-insensitive.
func CountRows(markup string) int {
	return len(rowMarker.FindAllStringIndex(markup, -1))
}

// TableLabel renders a table category annotated with its row count.
func TableLabel(category Category, rows int) string {
	return fmt.Sprintf("%s (%d rows)", category, rows)
}
