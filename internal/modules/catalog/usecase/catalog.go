package usecase

import (
	"context"

	"psynara/internal/modules/catalog/dto"
	catalogin "psynara/internal/modules/catalog/port/in"
	"psynara/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListGames(ctx context.Context) ([]dto.GameOutput, error) {
	entries, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GameOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, toGameOutput(e))
	}
	return out, nil
}

func (i *Interactor) GetGame(ctx context.Context, id string) (dto.GameOutput, error) {
	e, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.GameOutput{}, err
	}
	return toGameOutput(e), nil
}

func (i *Interactor) FindGame(ctx context.Context, query string) (dto.GameOutput, error) {
	e, err := i.svc.Find(ctx, query)
	if err != nil {
		return dto.GameOutput{}, err
	}
	return toGameOutput(e), nil
}

func (i *Interactor) RecordCompletion(ctx context.Context, input dto.RecordCompletionInput) (dto.ProgressOutput, error) {
	p, g, err := i.svc.RecordCompletion(ctx, input.GameID, input.Score)
	if err != nil {
		return dto.ProgressOutput{}, err
	}
	return dto.ProgressOutput{ID: p.ID, GameID: p.GameID, GameName: g.Name, Score: p.Score, CompletedAt: p.CompletedAt}, nil
}

func (i *Interactor) ListProgress(ctx context.Context) ([]dto.ProgressOutput, error) {
	rows, names, err := i.svc.History(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProgressOutput, 0, len(rows))
	for _, p := range rows {
		if !p.Completed {
			continue
		}
		out = append(out, dto.ProgressOutput{ID: p.ID, GameID: p.GameID, GameName: names[p.GameID], Score: p.Score, CompletedAt: p.CompletedAt})
	}
	return out, nil
}

func toGameOutput(e service.Entry) dto.GameOutput {
	g := e.Game
	return dto.GameOutput{
		ID:              g.ID,
		Name:            g.Name,
		Description:     g.Description,
		Category:        string(g.Category),
		Instructions:    g.Instructions,
		Difficulty:      string(g.Difficulty),
		DifficultyLabel: g.Difficulty.Label(),
		Kind:            g.Kind,
		Completed:       e.Completed,
		CreatedAt:       g.CreatedAt,
	}
}
