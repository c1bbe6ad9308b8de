package domain

import (
	"fmt"
	"strings"
	"time"

	"psynara/internal/platform/slug"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Validate() error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return fmt.Errorf("unsupported difficulty %q", string(d))
	}
}

// Label is the display text shown next to a game.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Fácil"
	case DifficultyMedium:
		return "Moderado"
	case DifficultyHard:
		return "Avanzado"
	default:
		return string(d)
	}
}

type Category string

const (
	CategoryBreathing   Category = "breathing"
	CategoryCognitive   Category = "cognitive"
	CategoryMindfulness Category = "mindfulness"
	CategoryMeditation  Category = "meditation"
)

func (c Category) Validate() error {
	switch c {
	case CategoryBreathing, CategoryCognitive, CategoryMindfulness, CategoryMeditation:
		return nil
	default:
		return fmt.Errorf("unsupported category %q", string(c))
	}
}

const KindGeneric = "generic"

// legacyKinds maps display names from catalogs that predate the kind column.
var legacyKinds = map[string]string{
	"respiracion consciente": "breathing",
	"tecnica somatica":       "somatic",
	"gratitud diaria":        "gratitude",
	"desafio cognitivo":      "cognitive_reframe",
	"debate de pensamientos": "cognitive_reframe",
	"conversacion interna":   "cognitive_reframe",
	"cuerpo de exploracion":  "body_scan",
	"escaneo corporal":       "body_scan",
	"rueda de emociones":     "emotion_wheel",
	"meditacion diaria":      "mindfulness_timer",
	"visualizacion guiada":   "mindfulness_timer",
}

// ResolveKind prefers the stored tag and only consults display names when it is empty.
func ResolveKind(kind, name string) string {
	if k := strings.TrimSpace(kind); k != "" {
		return k
	}
	if k, ok := legacyKinds[slug.Fold(name)]; ok {
		return k
	}
	return KindGeneric
}

type Game struct {
	ID           string
	Name         string
	Description  string
	Category     Category
	Instructions string
	Difficulty   Difficulty
	Kind         string
	CreatedAt    time.Time
}

func (g Game) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := g.Category.Validate(); err != nil {
		return err
	}
	return g.Difficulty.Validate()
}

type Progress struct {
	ID          string
	UserID      string
	GameID      string
	Completed   bool
	Score       int
	CompletedAt time.Time
	CreatedAt   time.Time
}

func (p Progress) Validate() error {
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(p.GameID) == "" {
		return fmt.Errorf("game id is required")
	}
	if p.Score < 0 || p.Score > 100 {
		return fmt.Errorf("score must be between 0 and 100")
	}
	return nil
}
