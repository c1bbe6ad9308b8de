package in

import (
	"context"

	"psynara/internal/modules/recommendation/dto"
)

type Usecase interface {
	Categories(ctx context.Context) ([]dto.CategoryOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.RecommendationOutput, error)
	Get(ctx context.Context, id string) (dto.RecommendationDetailOutput, error)
}
