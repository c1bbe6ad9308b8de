package in

import (
	"context"

	"psynara/internal/modules/recommendation/dto"
	recommendationin "psynara/internal/modules/recommendation/port/in"
)

type CLIHandler struct {
	usecase recommendationin.Usecase
}

func NewCLIHandler(usecase recommendationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Categories(ctx context.Context) ([]dto.CategoryOutput, error) {
	return h.usecase.Categories(ctx)
}

func (h CLIHandler) List(ctx context.Context, category string) ([]dto.RecommendationOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Category: category})
}

func (h CLIHandler) Show(ctx context.Context, id string) (dto.RecommendationDetailOutput, error) {
	return h.usecase.Get(ctx, id)
}
