package dto

import "time"

type GameOutput struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Instructions    string
	Difficulty      string
	DifficultyLabel string
	Kind            string
	Completed       bool
	CreatedAt       time.Time
}

type RecordCompletionInput struct {
	GameID string
	Score  int
}

type ProgressOutput struct {
	ID          string
	GameID      string
	GameName    string
	Score       int
	CompletedAt time.Time
}
