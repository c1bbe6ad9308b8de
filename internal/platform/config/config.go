package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// TimerMenu lists the selectable mindfulness durations in minutes.
var TimerMenu = []int{3, 5, 10, 15, 20}

type Config struct {
	DataDir  string         `mapstructure:"data_dir"`
	Database DatabaseConfig `mapstructure:"database"`
	User     UserConfig     `mapstructure:"user"`
	Log      LogConfig      `mapstructure:"log"`
	Exercise ExerciseConfig `mapstructure:"exercise"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UserConfig identifies the single local profile that replaces sign-in.
type UserConfig struct {
	ID       string `mapstructure:"id"`
	FullName string `mapstructure:"full_name"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

type ExerciseConfig struct {
	BreathingCycles int           `mapstructure:"breathing_cycles"`
	TimerMinutes    int           `mapstructure:"timer_minutes"`
	ScanInterval    time.Duration `mapstructure:"scan_interval"`
}

type SeedConfig struct {
	OnStart bool `mapstructure:"on_start"`
}

// Options carries explicit overrides, typically from CLI flags.
type Options struct {
	DataDir    string
	ConfigFile string
	UserID     string
}

// Load reads configuration from defaults, an optional file and env. Env var overrides use prefix PSYNARA_.
func Load(opts Options) (Config, error) {
	v := viper.New()

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = os.Getenv("PSYNARA_DATA_DIR")
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share", "psynara")
	}

	v.SetDefault("data_dir", dataDir)
	v.SetDefault("database.path", "")
	v.SetDefault("user.id", "local")
	v.SetDefault("user.full_name", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("exercise.breathing_cycles", 5)
	v.SetDefault("exercise.timer_minutes", 5)
	v.SetDefault("exercise.scan_interval", "15s")
	v.SetDefault("seed.on_start", true)

	v.SetConfigType("yaml")
	cfgPath := opts.ConfigFile
	if cfgPath == "" {
		cfgPath = os.Getenv("PSYNARA_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(dataDir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PSYNARA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if opts.DataDir != "" {
		c.DataDir = opts.DataDir
	}
	if opts.UserID != "" {
		c.User.ID = opts.UserID
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.DataDir, "psynara.db")
	}
	if c.Log.Path == "" {
		c.Log.Path = filepath.Join(c.DataDir, "psynara.log")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data dir is required")
	}
	if strings.TrimSpace(c.User.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if c.Exercise.BreathingCycles <= 0 {
		return fmt.Errorf("exercise.breathing_cycles must be positive")
	}
	if !slices.Contains(TimerMenu, c.Exercise.TimerMinutes) {
		return fmt.Errorf("exercise.timer_minutes must be one of %v", TimerMenu)
	}
	if c.Exercise.ScanInterval <= 0 {
		return fmt.Errorf("exercise.scan_interval must be positive")
	}
	return nil
}
