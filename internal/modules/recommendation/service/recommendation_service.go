package service

import (
	"context"

	"psynara/internal/modules/recommendation/domain"
	recommendationout "psynara/internal/modules/recommendation/port/out"
)

type RecommendationService struct {
	store recommendationout.RecommendationStore
}

func NewRecommendationService(store recommendationout.RecommendationStore) *RecommendationService {
	return &RecommendationService{store: store}
}

func (s *RecommendationService) List(ctx context.Context, category string) ([]domain.Recommendation, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Filter(all, c), nil
}

func (s *RecommendationService) Get(ctx context.Context, id string) (domain.Recommendation, error) {
	return s.store.FindByID(ctx, id)
}
