package domain

import (
	"slices"
	"time"

	apperrors "psynara/internal/platform/errors"
)

const DefaultScanInterval = 15 * time.Second

// BodyScan walks the body parts in order. While scanning it advances on its own.
type BodyScan struct {
	lifecycle
	index    int
	scanning bool
	interval int
	elapsed  int
}

func NewBodyScan(interval time.Duration) *BodyScan {
	secs := int(interval / time.Second)
	if secs <= 0 {
		secs = int(DefaultScanInterval / time.Second)
	}
	return &BodyScan{lifecycle: newLifecycle(KindBodyScan), interval: secs}
}

func (b *BodyScan) Index() int     { return b.index }
func (b *BodyScan) Part() string   { return BodyParts[b.index] }
func (b *BodyScan) Scanning() bool { return b.scanning }
func (b *BodyScan) last() bool     { return b.index == len(BodyParts)-1 }

// SetScanning toggles auto-advance. Turning it on also starts an idle session.
func (b *BodyScan) SetScanning(on bool) {
	if b.status.Terminal() {
		return
	}
	b.scanning = on
	b.elapsed = 0
	if on {
		b.touch()
	}
}

// RecordSensation stores what the user feels in the current part.
func (b *BodyScan) RecordSensation(sensation string) error {
	if b.status.Terminal() {
		return nil
	}
	if !slices.Contains(Sensations, sensation) {
		return apperrors.Invalid("unknown sensation %q", sensation)
	}
	b.touch()
	b.responses[b.index] = sensation
	return nil
}

// Advance moves to the next part; an optional choice is recorded first.
func (b *BodyScan) Advance(choice string) error {
	if b.status.Terminal() {
		return nil
	}
	if choice != "" {
		if err := b.RecordSensation(choice); err != nil {
			return err
		}
	}
	b.touch()
	b.elapsed = 0
	if b.last() {
		b.scanning = false
		b.finish()
		return nil
	}
	b.index++
	return nil
}

func (b *BodyScan) Tick(elapsed time.Duration) {
	for n := b.seconds(elapsed); n > 0 && b.running() && b.scanning; n-- {
		b.elapsed++
		if b.elapsed < b.interval {
			continue
		}
		b.elapsed = 0
		if b.last() {
			b.scanning = false
			return
		}
		b.index++
	}
}

func (b *BodyScan) Snapshot() Snapshot {
	s := b.snapshot()
	s.Phase = "scan"
	s.ProgressIndex = b.index
	s.StepCount = len(BodyParts)
	s.Prompt = BodyParts[b.index]
	s.Options = slices.Clone(Sensations)
	s.Selected = b.responses[b.index]
	s.Scanning = b.scanning
	s.Remaining = b.interval - b.elapsed
	return s
}
