package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrInvalidTheme    = errors.New("unknown theme")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Themes understood by both the TUI and the plain CLI output.
var Themes = []string{"classic", "neon", "mono"}

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string        `mapstructure:"env"`            // local, production
	Theme         string        `mapstructure:"theme"`          // classic, neon or mono
	Animate       bool          `mapstructure:"animate"`        // draw the flip rotation
	FlipDuration  time.Duration `mapstructure:"flip_duration"`  // time for a half turn
	FrameInterval time.Duration `mapstructure:"frame_interval"` // animation tick
	LogFile       string        `mapstructure:"log_file"`       // empty disables logging
}

// Load reads configuration from an optional flashcards.yaml and FLASHCARDS_*
// environment variables. A non-empty path must point at an existing file.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("flashcards")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashcards")
	}

	v.SetDefault("env", "local")
	v.SetDefault("theme", "classic")
	v.SetDefault("animate", true)
	v.SetDefault("flip_duration", "500ms")
	v.SetDefault("frame_interval", "16ms")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("flashcards")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	known := false
	for _, t := range Themes {
		if c.Theme == t {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w %q (want one of %s)", ErrInvalidTheme, c.Theme, strings.Join(Themes, ", "))
	}
	if c.FlipDuration < 0 {
		return fmt.Errorf("%w: flip_duration %s is negative", ErrInvalidDuration, c.FlipDuration)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive, got %s", ErrInvalidDuration, c.FrameInterval)
	}
	return nil
}

// EffectiveFlipDuration is zero when animation is turned off.
func (c *Config) EffectiveFlipDuration() time.Duration {
	if !c.Animate {
		return 0
	}
	return c.FlipDuration
}
