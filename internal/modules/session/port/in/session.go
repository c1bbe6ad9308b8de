package in

import (
	"context"
	"time"

	"psynara/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error)
	Active(ctx context.Context) (dto.SessionOutput, error)
	Tick(ctx context.Context, elapsed time.Duration) (dto.SnapshotOutput, error)
	Apply(ctx context.Context, input dto.ActionInput) (dto.SnapshotOutput, error)
	Cancel(ctx context.Context) (dto.SnapshotOutput, error)
	Finish(ctx context.Context) (dto.FinishOutput, error)
}
