package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"psynara/internal/modules/session/domain"
	"psynara/internal/platform/clock"
	"psynara/internal/platform/id"
)

type SessionService struct {
	clock  clock.Clock
	idGen  id.Generator
	opts   domain.Options
	logger hclog.Logger
}

func NewSessionService(clock clock.Clock, idGen id.Generator, opts domain.Options, logger hclog.Logger) *SessionService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SessionService{clock: clock, idGen: idGen, opts: opts, logger: logger.Named("session")}
}

func (s *SessionService) Logger() hclog.Logger { return s.logger }

// Start builds a fresh engine for the catalog entry. The stored kind tag picks
// the machine; unknown tags run the generic flow.
func (s *SessionService) Start(_ context.Context, gameID, gameName, kind string) (domain.ActiveSession, error) {
	if gameID == "" {
		return domain.ActiveSession{}, fmt.Errorf("game id is required")
	}
	k := domain.ParseKind(kind)
	if string(k) != kind {
		s.logger.Debug("unknown exercise kind, using generic flow", "game", gameName, "kind", kind)
	}
	active := domain.ActiveSession{
		ID:        s.idGen.New(),
		GameID:    gameID,
		GameName:  gameName,
		StartedAt: s.clock.Now(),
		Engine:    domain.New(k, s.opts),
	}
	s.logger.Info("session started", "session", active.ID, "game", gameName, "kind", k)
	return active, nil
}

// Complete reads the completion payload from a finished engine.
func (s *SessionService) Complete(active domain.ActiveSession) (domain.Outcome, int, error) {
	outcome, err := active.Engine.Complete()
	if err != nil {
		return domain.Outcome{}, 0, err
	}
	elapsed := int(s.clock.Now().Sub(active.StartedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	return outcome, elapsed, nil
}

func (s *SessionService) Cancel(active domain.ActiveSession) {
	active.Engine.Cancel()
	s.logger.Info("session cancelled", "session", active.ID, "game", active.GameName)
}
