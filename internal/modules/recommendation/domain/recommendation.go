package domain

import (
	"time"

	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/slug"
)

type Recommendation struct {
	ID          string
	Category    string
	Title       string
	Description string
	Content     string
	Icon        string
	CreatedAt   time.Time
}

// Category is a filter value; CategoryAll matches everything.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryAnxiety     Category = "ansiedad"
	CategoryStress      Category = "estres"
	CategorySelfEsteem  Category = "autoestima"
	CategoryWellbeing   Category = "bienestar"
	CategoryMindfulness Category = "mindfulness"
)

var categoryLabels = []struct {
	category Category
	label    string
}{
	{CategoryAll, "Todas"},
	{CategoryAnxiety, "Ansiedad"},
	{CategoryStress, "Estrés"},
	{CategorySelfEsteem, "Autoestima"},
	{CategoryWellbeing, "Bienestar"},
	{CategoryMindfulness, "Mindfulness"},
}

// Categories lists the filters in display order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryLabels))
	for _, c := range categoryLabels {
		out = append(out, c.category)
	}
	return out
}

func (c Category) Label() string {
	for _, l := range categoryLabels {
		if l.category == c {
			return l.label
		}
	}
	return string(c)
}

// ParseCategory accepts ids or labels in any case or accent ("Estrés").
// Empty means all.
func ParseCategory(s string) (Category, error) {
	folded := slug.Fold(s)
	if folded == "" {
		return CategoryAll, nil
	}
	for _, l := range categoryLabels {
		if folded == string(l.category) || folded == slug.Fold(l.label) {
			return l.category, nil
		}
	}
	return "", apperrors.Invalid("unknown category %q", s)
}

func (c Category) Matches(r Recommendation) bool {
	return c == CategoryAll || c == "" || slug.Fold(r.Category) == string(c)
}

func Filter(items []Recommendation, c Category) []Recommendation {
	out := make([]Recommendation, 0, len(items))
	for _, r := range items {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

const fallbackGlyph = "💡"

var glyphs = map[string]string{
	"wind":           "🌬",
	"anchor":         "⚓",
	"shield":         "🛡",
	"coffee":         "☕",
	"book-heart":     "📖",
	"message-circle": "💬",
	"moon":           "🌙",
	"heart-pulse":    "💓",
	"users":          "👥",
	"brain":          "🧠",
	"heart":          "❤",
	"lightbulb":      fallbackGlyph,
}

// Glyph maps a stored icon name to a terminal symbol, defaulting to a lightbulb.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return fallbackGlyph
}
