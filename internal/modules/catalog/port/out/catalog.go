package out

import (
	"context"

	"psynara/internal/modules/catalog/domain"
)

type GameStore interface {
	List(ctx context.Context) ([]domain.Game, error)
	FindByID(ctx context.Context, id string) (domain.Game, error)
}

type ProgressStore interface {
	Insert(ctx context.Context, progress domain.Progress) error
	ListByUser(ctx context.Context, userID string) ([]domain.Progress, error)
}
