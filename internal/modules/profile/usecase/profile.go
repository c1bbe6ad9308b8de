package usecase

import (
	"context"

	"psynara/internal/modules/profile/domain"
	"psynara/internal/modules/profile/dto"
	profilein "psynara/internal/modules/profile/port/in"
	"psynara/internal/modules/profile/service"
)

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (dto.ProfileOutput, error) {
	return toOutput(i.svc.Ensure(ctx))
}

func (i *Interactor) Rename(ctx context.Context, fullName string) (dto.ProfileOutput, error) {
	return toOutput(i.svc.Rename(ctx, fullName))
}

func (i *Interactor) UpdateMood(ctx context.Context, mood string) (dto.ProfileOutput, error) {
	return toOutput(i.svc.SetMood(ctx, mood))
}

func (i *Interactor) Moods(context.Context) ([]dto.MoodOutput, error) {
	moods := domain.Moods()
	out := make([]dto.MoodOutput, 0, len(moods))
	for _, m := range moods {
		out = append(out, dto.MoodOutput{ID: string(m), Label: m.Label(), Emoji: m.Emoji()})
	}
	return out, nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	_, stats, err := i.svc.Stats(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return toStatsOutput(stats), nil
}

func (i *Interactor) Home(ctx context.Context) (dto.HomeOutput, error) {
	p, stats, err := i.svc.Stats(ctx)
	if err != nil {
		return dto.HomeOutput{}, err
	}
	profile, _ := toOutput(p, nil)
	return dto.HomeOutput{Profile: profile, Stats: toStatsOutput(stats), Tip: i.svc.Tip()}, nil
}

func toOutput(p domain.Profile, err error) (dto.ProfileOutput, error) {
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return dto.ProfileOutput{
		ID:        p.ID,
		FullName:  p.FullName,
		Display:   p.DisplayName(),
		Mood:      string(p.Mood),
		MoodLabel: p.Mood.Label(),
		MoodEmoji: p.Mood.Emoji(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func toStatsOutput(s domain.Stats) dto.StatsOutput {
	return dto.StatsOutput{
		CompletedGames:    s.CompletedGames,
		AnsweredQuestions: s.AnsweredQuestions,
		DaysActive:        s.DaysActive,
	}
}
