package in

import (
	"context"
	"time"

	sessiondto "psynara/internal/modules/session/dto"
	sessionin "psynara/internal/modules/session/port/in"
)

type TUIHandler struct {
	usecase sessionin.Usecase
}

func NewTUIHandler(usecase sessionin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

// StartSession replaces whatever the exercises tab left behind.
func (h TUIHandler) StartSession(ctx context.Context, gameID string) (sessiondto.SessionOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{GameID: gameID, Replace: true})
}

func (h TUIHandler) Tick(ctx context.Context, elapsed time.Duration) (sessiondto.SnapshotOutput, error) {
	return h.usecase.Tick(ctx, elapsed)
}

func (h TUIHandler) Apply(ctx context.Context, action sessiondto.ActionInput) (sessiondto.SnapshotOutput, error) {
	return h.usecase.Apply(ctx, action)
}

func (h TUIHandler) CancelSession(ctx context.Context) (sessiondto.SnapshotOutput, error) {
	return h.usecase.Cancel(ctx)
}

func (h TUIHandler) FinishSession(ctx context.Context) (sessiondto.FinishOutput, error) {
	return h.usecase.Finish(ctx)
}
