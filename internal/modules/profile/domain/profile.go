package domain

import (
	"math"
	"strings"
	"time"

	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/slug"
)

type Mood string

const (
	MoodExcellent Mood = "excelente"
	MoodGood      Mood = "bien"
	MoodNeutral   Mood = "neutral"
	MoodLow       Mood = "bajo"
	MoodBad       Mood = "mal"
)

var moods = []struct {
	mood  Mood
	label string
	emoji string
}{
	{MoodExcellent, "Excelente", "😄"},
	{MoodGood, "Bien", "😊"},
	{MoodNeutral, "Neutral", "😐"},
	{MoodLow, "Bajo", "😔"},
	{MoodBad, "Mal", "😢"},
}

func Moods() []Mood {
	out := make([]Mood, 0, len(moods))
	for _, m := range moods {
		out = append(out, m.mood)
	}
	return out
}

func (m Mood) Label() string {
	for _, d := range moods {
		if d.mood == m {
			return d.label
		}
	}
	return string(m)
}

func (m Mood) Emoji() string {
	for _, d := range moods {
		if d.mood == m {
			return d.emoji
		}
	}
	return "😐"
}

func ParseMood(s string) (Mood, error) {
	folded := slug.Fold(s)
	for _, d := range moods {
		if folded == string(d.mood) {
			return d.mood, nil
		}
	}
	return "", apperrors.Invalid("unknown mood %q", s)
}

type Profile struct {
	ID        string
	FullName  string
	Mood      Mood
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName falls back to a generic greeting when no name is set.
func (p Profile) DisplayName() string {
	if p.FullName == "" {
		return "Usuario"
	}
	return p.FullName
}

func CleanName(name string) (string, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "", apperrors.Invalid("full name must not be empty")
	}
	return name, nil
}

// DaysActive counts started days since the profile was created, at least one.
func DaysActive(createdAt, now time.Time) int {
	days := int(math.Ceil(now.Sub(createdAt).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

type Stats struct {
	CompletedGames    int
	AnsweredQuestions int
	DaysActive        int
}

var tips = []string{
	"La salud mental es tan importante como la salud física. Dedica al menos 10 minutos al día para practicar mindfulness o meditación.",
	"Una respiración lenta y profunda le indica a tu cuerpo que está a salvo. Pruébala antes de una conversación difícil.",
	"Anota tres cosas buenas de tu día antes de dormir. El hábito entrena tu atención hacia lo positivo.",
	"Moverte cinco minutos cada hora reduce la tensión acumulada. Estírate, camina o sal a tomar aire.",
	"Háblate como le hablarías a un buen amigo. La autocompasión también se practica.",
	"Pedir ayuda es una muestra de fortaleza. Conversar con alguien de confianza aligera la carga.",
	"Dormir bien es la base del equilibrio emocional. Intenta acostarte a la misma hora cada noche.",
}

// TipOfDay rotates through the tips by calendar day.
func TipOfDay(now time.Time) string {
	return tips[now.YearDay()%len(tips)]
}
