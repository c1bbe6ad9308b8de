package domain

import (
	"strconv"
	"time"
)

func itoa(n int) string { return strconv.Itoa(n) }

// noTicks is embedded by flows that have no autonomous timer.
type noTicks struct{}

func (noTicks) Tick(time.Duration) {}
