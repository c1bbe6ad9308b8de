package usecase

import (
	"context"

	"psynara/internal/modules/recommendation/domain"
	"psynara/internal/modules/recommendation/dto"
	recommendationin "psynara/internal/modules/recommendation/port/in"
	"psynara/internal/modules/recommendation/service"
)

type Interactor struct {
	svc *service.RecommendationService
}

func NewInteractor(svc *service.RecommendationService) recommendationin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Categories(context.Context) ([]dto.CategoryOutput, error) {
	cats := domain.Categories()
	out := make([]dto.CategoryOutput, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryOutput{ID: string(c), Label: c.Label()})
	}
	return out, nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.RecommendationOutput, error) {
	items, err := i.svc.List(ctx, input.Category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecommendationOutput, 0, len(items))
	for _, r := range items {
		out = append(out, toOutput(r))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.RecommendationDetailOutput, error) {
	r, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.RecommendationDetailOutput{}, err
	}
	return dto.RecommendationDetailOutput{RecommendationOutput: toOutput(r), Content: r.Content}, nil
}

func toOutput(r domain.Recommendation) dto.RecommendationOutput {
	return dto.RecommendationOutput{
		ID:            r.ID,
		Category:      r.Category,
		CategoryLabel: domain.Category(r.Category).Label(),
		Title:         r.Title,
		Description:   r.Description,
		Icon:          r.Icon,
		Glyph:         domain.Glyph(r.Icon),
		CreatedAt:     r.CreatedAt,
	}
}
