package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// New returns a file-backed logger; the terminal belongs to the TUI.
func New(level, path string) (hclog.Logger, io.Closer, error) {
	if path == "" {
		return hclog.NewNullLogger(), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "psynara",
		Level:  lvl,
		Output: f,
	})
	return logger, f, nil
}
