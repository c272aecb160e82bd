package market

import "fmt"

const analysisPrompt = `Provide comprehensive crop price analysis for %[1]s in India with interactive visualizations and data tables. Include:

## 1. State-wise Price Comparison Table
Create an HTML table comparing %[1]s prices across all major Indian states. Include columns for:
- State Name
- Current Price (₹/quintal)
- Previous Month Price
- Price Change (%%)
- Market Status

## 2. Interactive Price Chart
Create a complete HTML visualization using Plotly.js CDN showing:
- Monthly price trends for the last 12 months
- State-wise price comparison
- Make it interactive with hover effects
- Use this CDN: https://cdn.plot.ly/plotly-latest.min.js

## 3. Market Analysis
- Current market conditions
- Price factors and drivers
- Regional variations
- Seasonal patterns
- Future outlook

## 4. Supply Chain Data Table
Create another HTML table showing:
- Major producing states
- Production volumes
- Transportation costs
- Market arrival data

Format: Provide complete, self-contained HTML for tables and charts with inline CSS styling. Make tables responsive and visually appealing with proper borders, colors, and formatting.`

// BuildPrompt returns the market analysis prompt for crop.
func BuildPrompt(crop string) string {
	return fmt.Sprintf(analysisPrompt, crop)
}
