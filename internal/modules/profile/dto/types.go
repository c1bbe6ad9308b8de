package dto

import "time"

type ProfileOutput struct {
	ID        string
	FullName  string
	Display   string
	Mood      string
	MoodLabel string
	MoodEmoji string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MoodOutput struct {
	ID    string
	Label string
	Emoji string
}

type StatsOutput struct {
	CompletedGames    int
	AnsweredQuestions int
	DaysActive        int
}

type HomeOutput struct {
	Profile ProfileOutput
	Stats   StatsOutput
	Tip     string
}
