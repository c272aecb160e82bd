package market

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/extractor"
)

const (
	placeholderChartID   = "sample-plotly-chart"
	placeholderTableID   = "sample-price-table"
	placeholderChartType = "Plotly.js Interactive Chart"
	placeholderTableType = "Regional Price Comparison Table (6 rows)"
	placeholderChartSize = 1500

	priceFloor  = 2000
	priceSpread = 500
)

var (
	placeholderMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	placeholderStates = []string{"Punjab", "Haryana", "Uttar Pradesh", "Madhya Pradesh", "Rajasthan", "Gujarat"}
)

// PlaceholderGenerator produces the sample chart, table and analysis shown
// when no real content is available.
type PlaceholderGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewPlaceholderGenerator(rnd *rand.Rand, now func() time.Time) *PlaceholderGenerator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &PlaceholderGenerator{rnd: rnd, now: now}
}

func (g *PlaceholderGenerator) price() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return priceFloor + g.rnd.IntN(priceSpread)
}

// Chart is a Plotly line chart of twelve monthly prices in [2000, 2500).
func (g *PlaceholderGenerator) Chart(crop string) entity.Visualization {
	prices := make([]int, len(placeholderMonths))
	for i := range prices {
		prices[i] = g.price()
	}
	months, _ := json.Marshal(placeholderMonths)
	values, _ := json.Marshal(prices)
	name := displayCrop(crop)
	divID := "plotly-chart-" + crop

	var b strings.Builder
	b.WriteString(`<div style="width: 100%; height: 400px; padding: 20px; background: #f8f9fa; border-radius: 8px;">` + "\n")
	fmt.Fprintf(&b, `  <h3 style="text-align: center; color: #333; margin-bottom: 20px;">%s Price Trends (₹/Quintal)</h3>`+"\n", name)
	fmt.Fprintf(&b, `  <div id="%s" style="width: 100%%; height: 350px;"></div>`+"\n", divID)
	b.WriteString("</div>\n")
	b.WriteString(`<script src="https://cdn.plot.ly/plotly-latest.min.js"></script>` + "\n")
	b.WriteString("<script>\n")
	fmt.Fprintf(&b, "  const trace = {x: %s, y: %s, type: 'scatter', mode: 'lines+markers',\n", months, values)
	fmt.Fprintf(&b, "    marker: {color: '#2E8B57', size: 8}, line: {color: '#2E8B57', width: 3}, name: '%s Prices'};\n", crop)
	b.WriteString("  const layout = {title: '', xaxis: {title: 'Month'}, yaxis: {title: 'Price (₹/Quintal)'},\n")
	b.WriteString("    paper_bgcolor: 'rgba(0,0,0,0)', plot_bgcolor: 'rgba(0,0,0,0)', font: {family: 'Arial, sans-serif'}};\n")
	fmt.Fprintf(&b, "  Plotly.newPlot('%s', [trace], layout, {responsive: true});\n", divID)
	b.WriteString("</script>")

	return entity.Visualization{
		ID:       placeholderChartID,
		Kind:     string(extractor.KindChart),
		HTML:     b.String(),
		Type:     placeholderChartType,
		Category: string(extractor.CategoryPlotly),
		Size:     placeholderChartSize,
		Title:    name + " Price Trends",
	}
}

// Table compares current and previous prices across six fixed states.
func (g *PlaceholderGenerator) Table(crop string) entity.Visualization {
	name := displayCrop(crop)

	var rows strings.Builder
	for _, state := range placeholderStates {
		current := g.price()
		previous := g.price()
		change := float64(current-previous) / float64(previous) * 100
		changeText := fmt.Sprintf("%.1f", change)

		status, color := "Declining", "#28a745"
		sign := ""
		if change > 0 {
			status, color = "Rising", "#dc3545"
			sign = "+"
		}

		fmt.Fprintf(&rows, `      <tr style="border-bottom: 1px solid #e1e5e9;">`+
			`<td style="padding: 12px; font-weight: 500;">%s</td>`+
			`<td style="padding: 12px; text-align: right;">₹%d</td>`+
			`<td style="padding: 12px; text-align: right;">₹%d</td>`+
			`<td style="padding: 12px; text-align: right; color: %s;">%s%s%%</td>`+
			`<td style="padding: 12px;">%s</td></tr>`+"\n",
			state, current, previous, color, sign, changeText, status)
	}

	var b strings.Builder
	b.WriteString(`<div style="background: white; border-radius: 8px; overflow: hidden;">` + "\n")
	fmt.Fprintf(&b, `  <h3 style="margin: 0; padding: 16px; font-size: 18px;">%s Prices Across States</h3>`+"\n", name)
	b.WriteString(`  <table style="width: 100%; border-collapse: collapse; font-family: Arial, sans-serif;">` + "\n")
	b.WriteString("    <thead><tr><th>State</th><th>Current Price</th><th>Previous Price</th><th>Change</th><th>Status</th></tr></thead>\n")
	b.WriteString("    <tbody>\n")
	b.WriteString(rows.String())
	b.WriteString("    </tbody>\n  </table>\n")
	fmt.Fprintf(&b, `  <div style="padding: 12px; text-align: center; color: #6c757d; font-size: 12px;">Sample data for demonstration • Last updated: %s</div>`+"\n",
		g.now().Format("02/01/2006"))
	b.WriteString("</div>")

	return entity.Visualization{
		ID:       placeholderTableID,
		Kind:     string(extractor.KindTable),
		HTML:     b.String(),
		Type:     placeholderTableType,
		Category: string(extractor.CategoryRegionalTable),
		Size:     len(placeholderStates),
		RowCount: len(placeholderStates),
		Title:    name + " Prices Across States",
		Columns:  []string{"State", "Current Price", "Previous Price", "Change", "Status"},
	}
}

// Analysis is the fixed sample markdown used when generation failed.
func (g *PlaceholderGenerator) Analysis(crop string) string {
	return fmt.Sprintf(sampleAnalysis, displayCrop(crop), crop)
}

func displayCrop(crop string) string {
	if crop == "" {
		return ""
	}
	return strings.ToUpper(crop[:1]) + crop[1:]
}

const sampleAnalysis = `# %s Market Analysis

## Market Overview
Current market conditions show moderate volatility with seasonal patterns typical for %s. Supply chain dynamics are influenced by monsoon patterns and government procurement policies.

## Key Price Drivers
- **Weather Conditions**: Normal monsoon activity supporting crop growth
- **Government Policies**: MSP announcements affecting farmer decisions
- **Export Demand**: International market trends impacting domestic prices
- **Storage & Logistics**: Transportation costs and storage facility availability

## Regional Variations
Price differences across states reflect local supply-demand dynamics, transportation costs, and regional market infrastructure. Northern states typically show different pricing patterns compared to southern markets.

## Market Outlook
- **Short-term (3 months)**: Stable prices with seasonal adjustments
- **Medium-term (6 months)**: Dependent on harvest quality and weather
- **Long-term**: Growth driven by population increase and dietary changes

*Note: This is sample analysis. Configure a generation API key for real-time market data and interactive visualizations.*`
