package tickeval

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/podhmo/tickeval/fitness"
	"github.com/podhmo/tickeval/game"
	"github.com/podhmo/tickeval/game/invaders"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the CLI and by batch evaluation.
type Config struct {
	// Game is the board every evaluation plays on.
	Game invaders.Config `yaml:"game"`

	// MaxSteps bounds the interpreter steps of a single evaluation.
	MaxSteps int `yaml:"max_steps"`

	// Concurrency bounds the evaluations running at once.
	Concurrency int `yaml:"concurrency"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Logger is the shared logger for all components. When nil, NewLogger
	// builds one from LogLevel.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Game:        invaders.DefaultConfig(),
		MaxSteps:    fitness.DefaultMaxSteps,
		Concurrency: 4,
		LogLevel:    "error",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig. Unknown keys are errors.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelError, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger returns c.Logger if set. Otherwise it builds a logger writing to
// w: human readable text on a terminal, JSON elsewhere.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	if c.Logger != nil {
		return c.Logger, nil
	}
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// Evaluator returns a batch evaluator playing on c.Game.
func (c *Config) Evaluator(logger *slog.Logger) *fitness.Evaluator {
	board := c.Game
	return &fitness.Evaluator{
		NewEnvironment: func() game.Environment { return invaders.New(board) },
		MaxSteps:       c.MaxSteps,
		Concurrency:    c.Concurrency,
		Logger:         logger,
	}
}
