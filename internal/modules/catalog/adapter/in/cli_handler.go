package in

import (
	"context"

	"psynara/internal/modules/catalog/dto"
	catalogin "psynara/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListGames(ctx context.Context) ([]dto.GameOutput, error) {
	return h.usecase.ListGames(ctx)
}

func (h CLIHandler) GetGame(ctx context.Context, id string) (dto.GameOutput, error) {
	return h.usecase.GetGame(ctx, id)
}

func (h CLIHandler) FindGame(ctx context.Context, query string) (dto.GameOutput, error) {
	return h.usecase.FindGame(ctx, query)
}

func (h CLIHandler) Complete(ctx context.Context, gameID string, score int) (dto.ProgressOutput, error) {
	return h.usecase.RecordCompletion(ctx, dto.RecordCompletionInput{GameID: gameID, Score: score})
}

func (h CLIHandler) ListProgress(ctx context.Context) ([]dto.ProgressOutput, error) {
	return h.usecase.ListProgress(ctx)
}
