package formatter

import (
	"fmt"
	"strings"

	"github.com/futig/crop-advisory/internal/entity"
)

const baseTitle = "Market Intelligence"

type Formatter interface {
	Format(report *entity.MarketReport) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", entity.ErrInvalidFormat, format)
	}
}

func reportTitle(report *entity.MarketReport) string {
	return fmt.Sprintf("%s %s", displayCrop(report.Crop), baseTitle)
}

func displayCrop(crop string) string {
	if crop == "" {
		return "Crop"
	}
	return strings.ToUpper(crop[:1]) + crop[1:]
}

func visualizationHeading(v entity.Visualization) string {
	if v.Title != "" {
		return v.Title
	}
	return v.Type
}
