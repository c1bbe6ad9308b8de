package domain

import "time"

// ActiveSession pairs a running engine with the catalog entry it was built for.
type ActiveSession struct {
	ID        string
	GameID    string
	GameName  string
	StartedAt time.Time
	Engine    Engine
}
