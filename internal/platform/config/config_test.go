package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"psynara/internal/platform/config"
)

func TestLoadDefaultsUnderDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PSYNARA_CONFIG", "")

	cfg, err := config.Load(config.Options{DataDir: dir})
	require.NoError(t, err)
	require.Equal(t, dir, cfg.DataDir)
	require.Equal(t, filepath.Join(dir, "psynara.db"), cfg.Database.Path)
	require.Equal(t, filepath.Join(dir, "psynara.log"), cfg.Log.Path)
	require.Equal(t, "local", cfg.User.ID)
	require.Equal(t, 5, cfg.Exercise.BreathingCycles)
	require.Equal(t, 5, cfg.Exercise.TimerMinutes)
	require.Equal(t, 15*time.Second, cfg.Exercise.ScanInterval)
	require.True(t, cfg.Seed.OnStart)
}

func TestLoadFileEnvAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PSYNARA_CONFIG", "")
	yaml := "user:\n  id: from-file\n  full_name: Ana\nexercise:\n  breathing_cycles: 3\n  timer_minutes: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("PSYNARA_EXERCISE_BREATHING_CYCLES", "7")

	cfg, err := config.Load(config.Options{DataDir: dir})
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.User.ID)
	require.Equal(t, "Ana", cfg.User.FullName)
	require.Equal(t, 7, cfg.Exercise.BreathingCycles)
	require.Equal(t, 10, cfg.Exercise.TimerMinutes)

	cfg, err = config.Load(config.Options{DataDir: dir, UserID: "from-flag"})
	require.NoError(t, err)
	require.Equal(t, "from-flag", cfg.User.ID)
}

func TestLoadRejectsTimerOutsideMenu(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PSYNARA_CONFIG", "")
	t.Setenv("PSYNARA_EXERCISE_TIMER_MINUTES", "7")

	_, err := config.Load(config.Options{DataDir: dir})
	require.ErrorContains(t, err, "timer_minutes")
}

func TestExplicitMissingConfigFileFails(t *testing.T) {
	dir := t.TempDir()
	_, err := config.Load(config.Options{DataDir: dir, ConfigFile: filepath.Join(dir, "nope.yaml")})
	require.Error(t, err)
}
