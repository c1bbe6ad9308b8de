package in

import (
	"context"

	"psynara/internal/modules/profile/dto"
	profilein "psynara/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Rename(ctx context.Context, fullName string) (dto.ProfileOutput, error) {
	return h.usecase.Rename(ctx, fullName)
}

func (h CLIHandler) SetMood(ctx context.Context, mood string) (dto.ProfileOutput, error) {
	return h.usecase.UpdateMood(ctx, mood)
}

func (h CLIHandler) Moods(ctx context.Context) ([]dto.MoodOutput, error) {
	return h.usecase.Moods(ctx)
}

func (h CLIHandler) Home(ctx context.Context) (dto.HomeOutput, error) {
	return h.usecase.Home(ctx)
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}
