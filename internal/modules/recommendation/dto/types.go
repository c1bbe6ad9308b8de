package dto

import "time"

type ListInput struct {
	Category string
}

type RecommendationOutput struct {
	ID            string
	Category      string
	CategoryLabel string
	Title         string
	Description   string
	Icon          string
	Glyph         string
	CreatedAt     time.Time
}

type RecommendationDetailOutput struct {
	RecommendationOutput
	Content string
}

type CategoryOutput struct {
	ID    string
	Label string
}
