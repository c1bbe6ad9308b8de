package in

import (
	"context"

	"psynara/internal/modules/catalog/dto"
)

type Usecase interface {
	ListGames(ctx context.Context) ([]dto.GameOutput, error)
	GetGame(ctx context.Context, id string) (dto.GameOutput, error)
	FindGame(ctx context.Context, query string) (dto.GameOutput, error)
	RecordCompletion(ctx context.Context, input dto.RecordCompletionInput) (dto.ProgressOutput, error)
	ListProgress(ctx context.Context) ([]dto.ProgressOutput, error)
}
