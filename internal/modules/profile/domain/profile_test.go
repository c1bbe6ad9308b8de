package domain_test

import (
	"errors"
	"testing"
	"time"

	"psynara/internal/modules/profile/domain"
	apperrors "psynara/internal/platform/errors"
)

func TestDaysActiveRoundsUpWithFloorOfOne(t *testing.T) {
	t.Parallel()
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		now  time.Time
		want int
	}{
		{created, 1},
		{created.Add(-time.Hour), 1},
		{created.Add(time.Minute), 1},
		{created.Add(24 * time.Hour), 1},
		{created.Add(24*time.Hour + time.Second), 2},
		{created.Add(10 * 24 * time.Hour), 10},
	}
	for _, tc := range cases {
		if got := domain.DaysActive(created, tc.now); got != tc.want {
			t.Fatalf("now=%s: expected %d, got %d", tc.now, tc.want, got)
		}
	}
}

func TestParseMood(t *testing.T) {
	t.Parallel()
	m, err := domain.ParseMood(" Excelente ")
	if err != nil || m != domain.MoodExcellent {
		t.Fatalf("expected excelente, got %q, %v", m, err)
	}
	if _, err := domain.ParseMood("feliz"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if domain.MoodLow.Label() != "Bajo" {
		t.Fatalf("unexpected label %q", domain.MoodLow.Label())
	}
}

func TestCleanName(t *testing.T) {
	t.Parallel()
	got, err := domain.CleanName("  Ana   María  ")
	if err != nil || got != "Ana María" {
		t.Fatalf("expected collapsed name, got %q, %v", got, err)
	}
	if _, err := domain.CleanName("   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestTipOfDayIsStableWithinADay(t *testing.T) {
	t.Parallel()
	morning := time.Date(2026, 6, 1, 7, 0, 0, 0, time.UTC)
	if domain.TipOfDay(morning) != domain.TipOfDay(morning.Add(12*time.Hour)) {
		t.Fatalf("tip must not change during the day")
	}
	if domain.TipOfDay(morning) == "" {
		t.Fatalf("tip must not be empty")
	}
}
