package in

import (
	"context"
	"errors"

	sessiondto "psynara/internal/modules/session/dto"
	sessionin "psynara/internal/modules/session/port/in"
	apperrors "psynara/internal/platform/errors"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, gameID string) (sessiondto.SessionOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{GameID: gameID})
}

// CompleteManually runs a generic exercise start to finish. Interactive kinds
// need the TUI to drive their ticks and prompts.
func (h CLIHandler) CompleteManually(ctx context.Context, gameID string) (sessiondto.FinishOutput, error) {
	started, err := h.usecase.Start(ctx, sessiondto.StartInput{GameID: gameID, Replace: true})
	if err != nil {
		return sessiondto.FinishOutput{}, err
	}
	if started.Snapshot.Kind != sessiondto.KindGeneric {
		_, _ = h.usecase.Cancel(ctx)
		return sessiondto.FinishOutput{}, apperrors.Invalid("%s is an interactive exercise; run it with `psynara tui`", started.GameName)
	}
	if _, err := h.usecase.Apply(ctx, sessiondto.ActionInput{Type: sessiondto.ActionAdvance}); err != nil {
		return sessiondto.FinishOutput{}, err
	}
	out, err := h.usecase.Finish(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrPersistence) {
		_, _ = h.usecase.Cancel(ctx)
	}
	return out, err
}
