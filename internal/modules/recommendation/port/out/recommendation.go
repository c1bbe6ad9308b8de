package out

import (
	"context"

	"psynara/internal/modules/recommendation/domain"
)

// RecommendationStore returns recommendations newest first.
type RecommendationStore interface {
	List(ctx context.Context) ([]domain.Recommendation, error)
	FindByID(ctx context.Context, id string) (domain.Recommendation, error)
}
