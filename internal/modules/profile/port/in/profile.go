package in

import (
	"context"

	"psynara/internal/modules/profile/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.ProfileOutput, error)
	Rename(ctx context.Context, fullName string) (dto.ProfileOutput, error)
	UpdateMood(ctx context.Context, mood string) (dto.ProfileOutput, error)
	Moods(ctx context.Context) ([]dto.MoodOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
	Home(ctx context.Context) (dto.HomeOutput, error)
}
