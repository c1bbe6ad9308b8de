package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"psynara/internal/modules/catalog/domain"
	catalogout "psynara/internal/modules/catalog/port/out"
	"psynara/internal/platform/clock"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/id"
	"psynara/internal/platform/slug"
)

type CatalogService struct {
	clock    clock.Clock
	idGen    id.Generator
	games    catalogout.GameStore
	progress catalogout.ProgressStore
	userID   string
}

func NewCatalogService(clock clock.Clock, idGen id.Generator, games catalogout.GameStore, progress catalogout.ProgressStore, userID string) *CatalogService {
	return &CatalogService{clock: clock, idGen: idGen, games: games, progress: progress, userID: userID}
}

// Entry is a game with the current user's completion flag.
type Entry struct {
	Game      domain.Game
	Completed bool
}

func (s *CatalogService) List(ctx context.Context) ([]Entry, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, err
	}
	done, err := s.completedSet(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(games))
	for _, g := range games {
		g.Kind = domain.ResolveKind(g.Kind, g.Name)
		entries = append(entries, Entry{Game: g, Completed: done[g.ID]})
	}
	return entries, nil
}

func (s *CatalogService) Get(ctx context.Context, gameID string) (Entry, error) {
	if strings.TrimSpace(gameID) == "" {
		return Entry{}, apperrors.Invalid("game id is required")
	}
	g, err := s.games.FindByID(ctx, gameID)
	if err != nil {
		return Entry{}, err
	}
	g.Kind = domain.ResolveKind(g.Kind, g.Name)
	done, err := s.completedSet(ctx)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Game: g, Completed: done[g.ID]}, nil
}

// Find resolves query as an id first, then as a display name. Misses suggest the closest name.
func (s *CatalogService) Find(ctx context.Context, query string) (Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Entry{}, apperrors.Invalid("game name or id is required")
	}
	entry, err := s.Get(ctx, query)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return Entry{}, err
	}

	entries, err := s.List(ctx)
	if err != nil {
		return Entry{}, err
	}
	want := slug.Fold(query)
	best, bestDist := "", -1
	for _, e := range entries {
		name := slug.Fold(e.Game.Name)
		if name == want {
			return e, nil
		}
		d := levenshtein.ComputeDistance(want, name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.Game.Name, d
		}
	}
	if best != "" && bestDist <= max(3, len(want)/3) {
		return Entry{}, fmt.Errorf("%w: game %q (did you mean %q?)", apperrors.ErrNotFound, query, best)
	}
	return Entry{}, fmt.Errorf("%w: game %q", apperrors.ErrNotFound, query)
}

// RecordCompletion inserts one completed user_progress row.
func (s *CatalogService) RecordCompletion(ctx context.Context, gameID string, score int) (domain.Progress, domain.Game, error) {
	g, err := s.games.FindByID(ctx, gameID)
	if err != nil {
		return domain.Progress{}, domain.Game{}, err
	}
	now := s.clock.Now()
	p := domain.Progress{
		ID:          s.idGen.New(),
		UserID:      s.userID,
		GameID:      g.ID,
		Completed:   true,
		Score:       score,
		CompletedAt: now,
		CreatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return domain.Progress{}, domain.Game{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.progress.Insert(ctx, p); err != nil {
		return domain.Progress{}, domain.Game{}, err
	}
	return p, g, nil
}

// History is the user's completion log, newest first, with game names attached.
func (s *CatalogService) History(ctx context.Context) ([]domain.Progress, map[string]string, error) {
	rows, err := s.progress.ListByUser(ctx, s.userID)
	if err != nil {
		return nil, nil, err
	}
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]string, len(games))
	for _, g := range games {
		names[g.ID] = g.Name
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CompletedAt.After(rows[j].CompletedAt) })
	return rows, names, nil
}

func (s *CatalogService) completedSet(ctx context.Context) (map[string]bool, error) {
	rows, err := s.progress.ListByUser(ctx, s.userID)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(rows))
	for _, p := range rows {
		if p.Completed {
			done[p.GameID] = true
		}
	}
	return done, nil
}
