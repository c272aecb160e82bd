package entity

type FarmSize string

const (
	FarmSizeSmall  FarmSize = "small"
	FarmSizeMedium FarmSize = "medium"
	FarmSizeLarge  FarmSize = "large"
)

type SoilType string

const (
	SoilClay  SoilType = "clay"
	SoilSandy SoilType = "sandy"
	SoilLoamy SoilType = "loamy"
	SoilSilt  SoilType = "silt"
	SoilMixed SoilType = "mixed"
)

type Budget string

const (
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceExperienced  Experience = "experienced"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AdvisoryRequest is the farm intake form.
type AdvisoryRequest struct {
	Location          string     `json:"location"`
	FarmSize          FarmSize   `json:"farm_size"`
	SoilType          SoilType   `json:"soil_type"`
	SoilPH            *float64   `json:"soil_ph,omitempty"`
	Budget            Budget     `json:"budget"`
	PreviousCrop      string     `json:"previous_crop,omitempty"`
	FarmingExperience Experience `json:"farming_experience"`
	AdditionalInfo    string     `json:"additional_info,omitempty"`
}

type CropRecommendation struct {
	Crop             string    `json:"crop"`
	Profitability    int       `json:"profitability"`
	Suitability      int       `json:"suitability"`
	ExpectedYield    string    `json:"expected_yield"`
	MarketPrice      string    `json:"market_price"`
	InvestmentNeeded string    `json:"investment_needed"`
	Duration         string    `json:"duration"`
	RiskLevel        RiskLevel `json:"risk_level"`
	Reasons          []string  `json:"reasons"`
	Challenges       []string  `json:"challenges"`
}

type WeatherOutlook struct {
	Temperature string `json:"temperature"`
	Rainfall    string `json:"rainfall"`
	Humidity    string `json:"humidity"`
	Forecast    string `json:"forecast"`
}

type MarketOutlook struct {
	Trend          string `json:"trend"`
	CurrentPrice   string `json:"current_price"`
	Demand         string `json:"demand"`
	SeasonalFactor string `json:"seasonal_factor"`
}

type SoilAnalysis struct {
	Suitability     string   `json:"suitability"`
	Recommendations []string `json:"recommendations"`
}

type AdvisoryResult struct {
	Form            AdvisoryRequest      `json:"form"`
	Recommendations []CropRecommendation `json:"recommendations"`
	Weather         WeatherOutlook       `json:"weather"`
	Market          MarketOutlook        `json:"market"`
	Soil            SoilAnalysis         `json:"soil"`
}
