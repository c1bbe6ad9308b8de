package service

import (
	"context"
	"errors"

	"github.com/hashicorp/go-hclog"

	"psynara/internal/modules/profile/domain"
	profileout "psynara/internal/modules/profile/port/out"
	"psynara/internal/platform/clock"
	apperrors "psynara/internal/platform/errors"
)

type ProfileService struct {
	clock       clock.Clock
	store       profileout.ProfileStore
	stats       profileout.StatsReader
	logger      hclog.Logger
	userID      string
	defaultName string
}

func NewProfileService(clock clock.Clock, store profileout.ProfileStore, stats profileout.StatsReader, logger hclog.Logger, userID, defaultName string) *ProfileService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ProfileService{
		clock:       clock,
		store:       store,
		stats:       stats,
		logger:      logger.Named("profile"),
		userID:      userID,
		defaultName: defaultName,
	}
}

// Ensure loads the local profile, creating it on first use.
func (s *ProfileService) Ensure(ctx context.Context) (domain.Profile, error) {
	p, err := s.store.Find(ctx, s.userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.Profile{}, err
	}
	now := s.clock.Now()
	p = domain.Profile{ID: s.userID, Mood: domain.MoodNeutral, CreatedAt: now, UpdatedAt: now}
	if name, err := domain.CleanName(s.defaultName); err == nil {
		p.FullName = name
	}
	if err := s.store.Save(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	s.logger.Info("profile created", "user", s.userID)
	return p, nil
}

func (s *ProfileService) Rename(ctx context.Context, fullName string) (domain.Profile, error) {
	name, err := domain.CleanName(fullName)
	if err != nil {
		return domain.Profile{}, err
	}
	return s.update(ctx, func(p *domain.Profile) { p.FullName = name })
}

func (s *ProfileService) SetMood(ctx context.Context, raw string) (domain.Profile, error) {
	mood, err := domain.ParseMood(raw)
	if err != nil {
		return domain.Profile{}, err
	}
	p, err := s.update(ctx, func(p *domain.Profile) { p.Mood = mood })
	if err == nil {
		s.logger.Debug("mood updated", "mood", mood)
	}
	return p, err
}

func (s *ProfileService) Stats(ctx context.Context) (domain.Profile, domain.Stats, error) {
	p, err := s.Ensure(ctx)
	if err != nil {
		return domain.Profile{}, domain.Stats{}, err
	}
	games, err := s.stats.CompletedGames(ctx, s.userID)
	if err != nil {
		return domain.Profile{}, domain.Stats{}, err
	}
	answers, err := s.stats.AnsweredQuestions(ctx, s.userID)
	if err != nil {
		return domain.Profile{}, domain.Stats{}, err
	}
	return p, domain.Stats{
		CompletedGames:    games,
		AnsweredQuestions: answers,
		DaysActive:        domain.DaysActive(p.CreatedAt, s.clock.Now()),
	}, nil
}

func (s *ProfileService) Tip() string {
	return domain.TipOfDay(s.clock.Now())
}

func (s *ProfileService) update(ctx context.Context, mutate func(*domain.Profile)) (domain.Profile, error) {
	p, err := s.Ensure(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	mutate(&p)
	p.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}
