package domain_test

import (
	"testing"

	"psynara/internal/modules/catalog/domain"
)

func TestResolveKindPrefersStoredTag(t *testing.T) {
	t.Parallel()
	cases := []struct {
		kind, name, want string
	}{
		{"gratitude", "Respiración Consciente", "gratitude"},
		{"", "Respiración Consciente", "breathing"},
		{"", "  técnica somática ", "somatic"},
		{"", "Visualización Guiada", "mindfulness_timer"},
		{"", "Debate de Pensamientos", "cognitive_reframe"},
		{"", "Yoga de la risa", domain.KindGeneric},
	}
	for _, tc := range cases {
		if got := domain.ResolveKind(tc.kind, tc.name); got != tc.want {
			t.Fatalf("ResolveKind(%q, %q) = %q, want %q", tc.kind, tc.name, got, tc.want)
		}
	}
}

func TestGameValidate(t *testing.T) {
	t.Parallel()
	valid := domain.Game{ID: "g1", Name: "Respira", Category: domain.CategoryBreathing, Difficulty: domain.DifficultyEasy}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid game: %v", err)
	}
	bad := valid
	bad.Category = "yoga"
	if err := bad.Validate(); err == nil {
		t.Fatalf("unknown category must fail")
	}
	bad = valid
	bad.Difficulty = "extreme"
	if err := bad.Validate(); err == nil {
		t.Fatalf("unknown difficulty must fail")
	}
}

func TestDifficultyLabel(t *testing.T) {
	t.Parallel()
	if domain.DifficultyMedium.Label() != "Moderado" || domain.Difficulty("x").Label() != "x" {
		t.Fatalf("unexpected labels")
	}
}

func TestProgressValidateScoreRange(t *testing.T) {
	t.Parallel()
	p := domain.Progress{UserID: "u", GameID: "g", Score: 101}
	if err := p.Validate(); err == nil {
		t.Fatalf("score above 100 must fail")
	}
	p.Score = 100
	if err := p.Validate(); err != nil {
		t.Fatalf("score 100: %v", err)
	}
}
