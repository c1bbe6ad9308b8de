package domain

import (
	"slices"
	"strings"

	apperrors "psynara/internal/platform/errors"
)

const MinGratitudeEntries = 3

// Gratitude is a free-form list; submitting needs MinGratitudeEntries filled in.
type Gratitude struct {
	lifecycle
	noTicks
	entries []string
}

func NewGratitude() *Gratitude {
	return &Gratitude{lifecycle: newLifecycle(KindGratitude), entries: make([]string, MinGratitudeEntries)}
}

func (g *Gratitude) Entries() []string { return slices.Clone(g.entries) }

// Filled counts entries with non-blank text.
func (g *Gratitude) Filled() int {
	n := 0
	for _, e := range g.entries {
		if strings.TrimSpace(e) != "" {
			n++
		}
	}
	return n
}

func (g *Gratitude) CanSubmit() bool { return g.Filled() >= MinGratitudeEntries }

func (g *Gratitude) SetEntry(i int, text string) error {
	if g.status.Terminal() {
		return nil
	}
	if i < 0 || i >= len(g.entries) {
		return apperrors.Invalid("entry %d out of range", i)
	}
	g.touch()
	g.entries[i] = text
	return nil
}

func (g *Gratitude) AddEntry() {
	if g.status.Terminal() {
		return
	}
	g.touch()
	g.entries = append(g.entries, "")
}

// RemoveEntry drops entry i; the list never goes below one entry.
func (g *Gratitude) RemoveEntry(i int) error {
	if g.status.Terminal() {
		return nil
	}
	if len(g.entries) <= 1 {
		return apperrors.Invalid("at least one entry must remain")
	}
	if i < 0 || i >= len(g.entries) {
		return apperrors.Invalid("entry %d out of range", i)
	}
	g.entries = slices.Delete(g.entries, i, i+1)
	return nil
}

// Advance submits the journal.
func (g *Gratitude) Advance(string) error {
	if g.status.Terminal() {
		return nil
	}
	if !g.CanSubmit() {
		return apperrors.Invalid("write at least %d things you are grateful for", MinGratitudeEntries)
	}
	n := 0
	for _, e := range g.entries {
		if t := strings.TrimSpace(e); t != "" {
			g.responses[n] = t
			n++
		}
	}
	g.finish()
	return nil
}

func (g *Gratitude) Snapshot() Snapshot {
	s := g.snapshot()
	s.Phase = "journal"
	s.ProgressIndex = g.Filled()
	s.StepCount = len(g.entries)
	s.Entries = slices.Clone(g.entries)
	return s
}
