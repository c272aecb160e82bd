package entity

import (
	"strings"
	"time"
)

// SupportedCrops is the selectable crop list of the market dashboard.
var SupportedCrops = []string{
	"wheat", "rice", "corn", "soybeans", "cotton", "sugar", "coffee", "cocoa",
	"barley", "oats", "canola", "sunflower", "potato", "tomato", "onion", "mustard",
}

// NormalizeCrop lowercases and trims a crop name, reporting whether it is supported.
func NormalizeCrop(crop string) (string, bool) {
	crop = strings.ToLower(strings.TrimSpace(crop))
	for _, c := range SupportedCrops {
		if c == crop {
			return crop, true
		}
	}
	return crop, false
}

// Visualization is a chart or table ready to be embedded by the client.
type Visualization struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind"`
	HTML     string   `json:"html"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Size     int      `json:"size"`
	RowCount int      `json:"row_count,omitempty"`
	Title    string   `json:"title,omitempty"`
	Columns  []string `json:"columns,omitempty"`
}

// MarketReport is the market intelligence answer for one crop.
type MarketReport struct {
	Crop        string
	Charts      []Visualization
	Tables      []Visualization
	Analysis    string
	Placeholder bool
	Notice      string
	GeneratedAt time.Time
}

type MarketRequest struct {
	Crop string `json:"crop"`
}

type MarketReportDTO struct {
	Crop        string             `json:"crop"`
	Charts      []VisualizationDTO `json:"charts"`
	Tables      []VisualizationDTO `json:"tables"`
	Analysis    string             `json:"analysis"`
	Placeholder bool               `json:"placeholder"`
	Notice      string             `json:"notice,omitempty"`
	GeneratedAt string             `json:"generated_at"`
}

type VisualizationDTO struct {
	Visualization
	Caption   string `json:"caption"`
	SizeLabel string `json:"size_label"`
}

type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatPDF      ResultFormat = "pdf"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatPDF:
		return true
	default:
		return false
	}
}

// ReportFile is an exported market report ready to be downloaded.
type ReportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
