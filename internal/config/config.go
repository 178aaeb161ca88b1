// Package config loads the cascade configuration from defaults, an optional
// YAML or JSON file and CASCADE_* environment variables, in that order.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/cascade/internal/logging"
	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CASCADE_"

// ErrInvalidConfig wraps every validation and decoding failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// BoardConfig describes a custom board. All zero means "use the difficulty".
type BoardConfig struct {
	Width   int `yaml:"width" mapstructure:"width" env:"WIDTH"`
	Height  int `yaml:"height" mapstructure:"height" env:"HEIGHT"`
	Hazards int `yaml:"hazards" mapstructure:"hazards" env:"HAZARDS"`
}

// LimitsConfig mirrors dispatch.Limits.
type LimitsConfig struct {
	MaxDepth   int `yaml:"max_depth" mapstructure:"max_depth" env:"MAX_DEPTH"`
	MaxActions int `yaml:"max_actions" mapstructure:"max_actions" env:"MAX_ACTIONS"`
}

// Config is the full application configuration.
type Config struct {
	Difficulty  string       `yaml:"difficulty" mapstructure:"difficulty" env:"DIFFICULTY"`
	Board       BoardConfig  `yaml:"board" mapstructure:"board" envPrefix:"BOARD_"`
	Seed        int64        `yaml:"seed" mapstructure:"seed" env:"SEED"`
	Limits      LimitsConfig `yaml:"limits" mapstructure:"limits" envPrefix:"LIMITS_"`
	LogLevel    string       `yaml:"log_level" mapstructure:"log_level" env:"LOG_LEVEL"`
	MetricsAddr string       `yaml:"metrics_addr" mapstructure:"metrics_addr" env:"METRICS_ADDR"`
}

// Default returns the built-in configuration.
func Default() Config {
	limits := dispatch.DefaultLimits()
	return Config{
		Difficulty: domain.Beginner.String(),
		Limits: LimitsConfig{
			MaxDepth:   limits.MaxDepth,
			MaxActions: limits.MaxActions,
		},
		LogLevel: "warn",
	}
}

// Load reads path (if non-empty) over the defaults, applies the process
// environment and validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, nil)
}

// LoadWithEnv is Load with an explicit environment. A nil map selects the
// process environment.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: parse env: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, filepath.Base(path), err)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, filepath.Base(path), err)
	}
	return nil
}

// Validate checks every field that can be checked without starting a game.
//
// The action limit must cover a cascade over every safe cell of the board.
func (c Config) Validate() error {
	board, err := c.GameBoard()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	limits := c.DispatchLimits()
	if err := limits.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if safe := board.Width*board.Height - board.Hazards; safe > limits.MaxActions {
		return fmt.Errorf("%w: max_actions %d is below the %d safe cells of a %dx%d board",
			ErrInvalidConfig, limits.MaxActions, safe, board.Width, board.Height)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// GameBoard resolves the board to play: the custom board when any of its
// fields is set, the named difficulty otherwise.
func (c Config) GameBoard() (domain.Board, error) {
	if c.Board != (BoardConfig{}) {
		b := domain.CustomBoard(c.Board.Width, c.Board.Height, c.Board.Hazards)
		return b, b.Validate()
	}
	d, err := domain.ParseDifficulty(c.Difficulty)
	if err != nil {
		return domain.Board{}, err
	}
	if d == domain.Custom {
		return domain.Board{}, fmt.Errorf("%w: difficulty %q needs board dimensions", domain.ErrInvalidBoard, c.Difficulty)
	}
	return d.Board(), nil
}

// DispatchLimits converts the limits section.
func (c Config) DispatchLimits() dispatch.Limits {
	return dispatch.Limits{MaxDepth: c.Limits.MaxDepth, MaxActions: c.Limits.MaxActions}
}

// Level parses the log level.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}
