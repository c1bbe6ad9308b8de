package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	catalogdto "psynara/internal/modules/catalog/dto"
	catalogin "psynara/internal/modules/catalog/port/in"
	"psynara/internal/modules/session/domain"
	sessiondto "psynara/internal/modules/session/dto"
	sessionin "psynara/internal/modules/session/port/in"
	sessionout "psynara/internal/modules/session/port/out"
	"psynara/internal/modules/session/service"
	apperrors "psynara/internal/platform/errors"
)

// Interactor owns the single active exercise. Every engine call happens under mu
// so TUI commands running on goroutines never race on one engine.
type Interactor struct {
	mu          sync.Mutex
	svc         *service.SessionService
	catalog     catalogin.Usecase
	activeStore sessionout.ActiveSessionStore
}

func NewInteractor(svc *service.SessionService, catalog catalogin.Usecase, activeStore sessionout.ActiveSessionStore) sessionin.Usecase {
	return &Interactor{svc: svc, catalog: catalog, activeStore: activeStore}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.SessionOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	existing, err := i.activeStore.LoadActive(ctx)
	switch {
	case err == nil:
		if !existing.Engine.Status().Terminal() {
			if !input.Replace {
				return sessiondto.SessionOutput{}, apperrors.ErrActiveSessionExists
			}
			i.svc.Cancel(existing)
		}
	case !errors.Is(err, apperrors.ErrNoActiveSession):
		return sessiondto.SessionOutput{}, err
	}

	if i.catalog == nil {
		return sessiondto.SessionOutput{}, fmt.Errorf("catalog usecase is not configured")
	}
	game, err := i.catalog.GetGame(ctx, input.GameID)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	active, err := i.svc.Start(ctx, game.ID, game.Name, game.Kind)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toSessionOutput(active), nil
}

func (i *Interactor) Active(ctx context.Context) (sessiondto.SessionOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toSessionOutput(active), nil
}

func (i *Interactor) Tick(ctx context.Context, elapsed time.Duration) (sessiondto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.SnapshotOutput{}, err
	}
	active.Engine.Tick(elapsed)
	return toSnapshotOutput(active.Engine.Snapshot()), nil
}

func (i *Interactor) Apply(ctx context.Context, input sessiondto.ActionInput) (sessiondto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.SnapshotOutput{}, err
	}
	action := domain.Action{
		Type:    domain.ActionType(input.Type),
		Value:   input.Value,
		Index:   input.Index,
		Minutes: input.Minutes,
	}
	if action.Type == domain.ActionCancel {
		i.svc.Cancel(active)
		snap := toSnapshotOutput(active.Engine.Snapshot())
		return snap, i.activeStore.ClearActive(ctx)
	}
	applyErr := domain.Apply(active.Engine, action)
	return toSnapshotOutput(active.Engine.Snapshot()), applyErr
}

func (i *Interactor) Cancel(ctx context.Context) (sessiondto.SnapshotOutput, error) {
	return i.Apply(ctx, sessiondto.ActionInput{Type: string(domain.ActionCancel)})
}

// Finish records the completion payload. The session stays active when the
// record cannot be written so the user can retry without redoing the exercise.
func (i *Interactor) Finish(ctx context.Context) (sessiondto.FinishOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.FinishOutput{}, err
	}
	outcome, elapsed, err := i.svc.Complete(active)
	if err != nil {
		return sessiondto.FinishOutput{}, err
	}
	if i.catalog == nil {
		return sessiondto.FinishOutput{}, fmt.Errorf("catalog usecase is not configured")
	}
	progress, err := i.catalog.RecordCompletion(ctx, catalogdto.RecordCompletionInput{GameID: active.GameID, Score: outcome.Score})
	if err != nil {
		i.svc.Logger().Warn("completion not recorded, session kept for retry",
			"session", active.ID, "game", active.GameName, "error", err)
		return sessiondto.FinishOutput{}, fmt.Errorf("record completion: %w", err)
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.FinishOutput{}, err
	}
	i.svc.Logger().Info("session completed", "session", active.ID, "game", active.GameName, "score", outcome.Score)
	return sessiondto.FinishOutput{
		SessionID:   active.ID,
		GameID:      active.GameID,
		GameName:    active.GameName,
		Kind:        string(outcome.Kind),
		Score:       outcome.Score,
		Responses:   outcome.Responses,
		ProgressID:  progress.ID,
		CompletedAt: progress.CompletedAt,
		DurationSec: elapsed,
	}, nil
}

func toSessionOutput(active domain.ActiveSession) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		SessionID: active.ID,
		GameID:    active.GameID,
		GameName:  active.GameName,
		StartedAt: active.StartedAt,
		Snapshot:  toSnapshotOutput(active.Engine.Snapshot()),
	}
}

func toSnapshotOutput(s domain.Snapshot) sessiondto.SnapshotOutput {
	return sessiondto.SnapshotOutput{
		Kind:              string(s.Kind),
		Status:            string(s.Status),
		Phase:             s.Phase,
		ProgressIndex:     s.ProgressIndex,
		StepCount:         s.StepCount,
		Remaining:         s.Remaining,
		Cycle:             s.Cycle,
		TotalCycles:       s.TotalCycles,
		Responses:         s.Responses,
		Running:           s.Running,
		Terminal:          s.Terminal,
		Prompt:            s.Prompt,
		Detail:            s.Detail,
		Tags:              s.Tags,
		Hints:             s.Hints,
		Options:           s.Options,
		SecondaryOptions:  s.SecondaryOptions,
		Selected:          s.Selected,
		SecondarySelected: s.SecondarySelected,
		Entries:           s.Entries,
		Minutes:           s.Minutes,
		Percent:           s.Percent,
		Quote:             s.Quote,
		Scanning:          s.Scanning,
	}
}
