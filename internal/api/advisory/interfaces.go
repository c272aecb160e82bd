package advisory

import (
	"context"

	"github.com/futig/crop-advisory/internal/entity"
)

type AdvisoryUsecase interface {
	Recommend(ctx context.Context, req *entity.AdvisoryRequest) (*entity.AdvisoryResult, error)
}
