package market

import (
	"fmt"
	"time"

	"github.com/futig/crop-advisory/internal/entity"
)

// toMarketReportDTO converts MarketReport entity to MarketReportDTO
func toMarketReportDTO(r *entity.MarketReport) *entity.MarketReportDTO {
	return &entity.MarketReportDTO{
		Crop:        r.Crop,
		Charts:      toVisualizationDTOs(r.Charts),
		Tables:      toVisualizationDTOs(r.Tables),
		Analysis:    r.Analysis,
		Placeholder: r.Placeholder,
		Notice:      r.Notice,
		GeneratedAt: r.GeneratedAt.UTC().Format(time.RFC3339),
	}
}

func toVisualizationDTOs(vs []entity.Visualization) []entity.VisualizationDTO {
	out := make([]entity.VisualizationDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVisualizationDTO(v))
	}
	return out
}

// toVisualizationDTO adds the display caption and size label. Charts are
// labelled by markup size, tables by row count.
func toVisualizationDTO(v entity.Visualization) entity.VisualizationDTO {
	caption := v.Title
	if caption == "" {
		caption = v.Type
	}

	sizeLabel := fmt.Sprintf("%.1fKB", float64(v.Size)/1000)
	if v.Kind == "table" {
		sizeLabel = fmt.Sprintf("%d rows", v.RowCount)
	}

	return entity.VisualizationDTO{
		Visualization: v,
		Caption:       caption,
		SizeLabel:     sizeLabel,
	}
}
