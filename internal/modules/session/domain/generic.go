package domain

// Generic covers catalog entries without a dedicated machine: the user marks them done.
type Generic struct {
	lifecycle
	noTicks
}

func NewGeneric() *Generic {
	return &Generic{lifecycle: newLifecycle(KindGeneric)}
}

func (g *Generic) Advance(string) error {
	if g.status.Terminal() {
		return nil
	}
	g.finish()
	return nil
}

func (g *Generic) Snapshot() Snapshot {
	s := g.snapshot()
	s.Phase = "manual"
	s.StepCount = 1
	return s
}
