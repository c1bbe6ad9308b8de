package out

import (
	"context"

	"psynara/internal/modules/profile/domain"
)

type ProfileStore interface {
	Find(ctx context.Context, id string) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}

// StatsReader counts a user's activity across the other collections.
type StatsReader interface {
	CompletedGames(ctx context.Context, userID string) (int, error)
	AnsweredQuestions(ctx context.Context, userID string) (int, error)
}
