package advisory

import "github.com/futig/crop-advisory/internal/entity"

func sampleRecommendations() []entity.CropRecommendation {
	return []entity.CropRecommendation{
		{
			Crop:             "Wheat",
			Profitability:    85,
			Suitability:      92,
			ExpectedYield:    "40-45 quintals/acre",
			MarketPrice:      "₹2,200-2,400/quintal",
			InvestmentNeeded: "₹15,000-20,000/acre",
			Duration:         "120-140 days",
			RiskLevel:        entity.RiskLow,
			Reasons: []string{
				"Excellent soil compatibility with your clay-loam soil",
				"Favorable weather conditions for current season",
				"Strong market demand and stable pricing",
				"Low water requirement matches local conditions",
			},
			Challenges: []string{
				"Monitor for wheat rust during humid periods",
				"Ensure proper fertilizer timing",
			},
		},
		{
			Crop:             "Mustard",
			Profitability:    78,
			Suitability:      88,
			ExpectedYield:    "15-18 quintals/acre",
			MarketPrice:      "₹5,500-6,200/quintal",
			InvestmentNeeded: "₹8,000-12,000/acre",
			Duration:         "90-110 days",
			RiskLevel:        entity.RiskMedium,
			Reasons: []string{
				"High market value and good demand",
				"Lower water requirement",
				"Good rotation crop for soil health",
				"Early harvest allows for second crop",
			},
			Challenges: []string{
				"Price volatility in market",
				"Pest management required",
			},
		},
		{
			Crop:             "Chickpea",
			Profitability:    72,
			Suitability:      80,
			ExpectedYield:    "18-22 quintals/acre",
			MarketPrice:      "₹4,800-5,400/quintal",
			InvestmentNeeded: "₹12,000-16,000/acre",
			Duration:         "100-120 days",
			RiskLevel:        entity.RiskMedium,
			Reasons: []string{
				"Good protein content demand",
				"Nitrogen fixation benefits soil",
				"Moderate water requirement",
				"Good export potential",
			},
			Challenges: []string{
				"Susceptible to wilt disease",
				"Weather sensitivity during flowering",
			},
		},
	}
}

var (
	sampleWeather = entity.WeatherOutlook{
		Temperature: "18-28°C",
		Rainfall:    "Expected 200-300mm",
		Humidity:    "65-75%",
		Forecast:    "Favorable for Rabi crops with adequate rainfall expected",
	}

	sampleMarket = entity.MarketOutlook{
		Trend:          "up",
		CurrentPrice:   "₹2,300/quintal (Wheat)",
		Demand:         "high",
		SeasonalFactor: "Peak demand season approaching",
	}
)

func sampleSoil() entity.SoilAnalysis {
	return entity.SoilAnalysis{
		Suitability: "Excellent for cereal crops, good drainage",
		Recommendations: []string{
			"Add organic matter to improve soil structure",
			"Consider soil testing for micronutrients",
			"Maintain pH between 6.5-7.5 for optimal yield",
		},
	}
}
