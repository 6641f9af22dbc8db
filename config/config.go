// Package config loads the backdrop configuration.
//
// Precedence, lowest first: built-in defaults, the config file (TOML, or YAML
// by extension), then BACKDROP_* environment variables, which may come from a
// .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/backdrop/audio"
	"github.com/lixenwraith/backdrop/canvas"
	"github.com/lixenwraith/backdrop/grid"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/particle"
	"github.com/lixenwraith/backdrop/reveal"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

// Effect names accepted by the terminal host and preview server
const (
	EffectParticles = "particles"
	EffectGrid      = "grid"
	EffectReveal    = "reveal"
)

// Effects lists every effect name in cycling order
var Effects = []string{EffectParticles, EffectGrid, EffectReveal}

type Config struct {
	Particles particle.Config `toml:"particles" yaml:"particles"`
	Grid      grid.Config     `toml:"grid" yaml:"grid"`
	Reveal    reveal.Config   `toml:"reveal" yaml:"reveal"`
	Terminal  TerminalConfig  `toml:"terminal" yaml:"terminal"`
	Audio     audio.Config    `toml:"audio" yaml:"audio"`
	Preview   PreviewConfig   `toml:"preview" yaml:"preview"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`

	// Keys overrides key bindings: key name → action name
	Keys map[string]string `toml:"keys" yaml:"keys"`
}

type TerminalConfig struct {
	CellWidth  int    `toml:"cell_width" yaml:"cell_width"`   // surface pixels per cell column
	CellHeight int    `toml:"cell_height" yaml:"cell_height"` // surface pixels per cell row
	RefreshHz  int    `toml:"refresh_hz" yaml:"refresh_hz"`
	Effect     string `toml:"effect" yaml:"effect"`
	Background string `toml:"background" yaml:"background"` // hex, cleared-cell colour
}

type PreviewConfig struct {
	Addr      string `toml:"addr" yaml:"addr"`
	MaxFrames int    `toml:"max_frames" yaml:"max_frames"`
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	Frames    int    `toml:"frames" yaml:"frames"` // frames simulated when a request names none
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty logs to stderr
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Particles: particle.DefaultConfig(),
		Grid:      grid.DefaultConfig(),
		Reveal:    reveal.DefaultConfig(),
		Terminal: TerminalConfig{
			CellWidth:  parameter.CellWidth,
			CellHeight: parameter.CellHeight,
			RefreshHz:  parameter.RefreshHz,
			Effect:     EffectParticles,
			Background: "#000000",
		},
		Audio: audio.DefaultConfig(),
		Preview: PreviewConfig{
			Addr:      parameter.PreviewAddr,
			MaxFrames: parameter.PreviewMaxFrames,
			Width:     parameter.PreviewWidth,
			Height:    parameter.PreviewHeight,
			Frames:    parameter.PreviewFrames,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads defaults, the file at path when non-empty, then environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Validate reports settings the hosts cannot run with
// Effect tunables are deliberately unchecked; odd values only look odd
func (c *Config) Validate() error {
	var errs []error

	if !KnownEffect(c.Terminal.Effect) {
		errs = append(errs, fmt.Errorf("terminal.effect: unknown effect %q", c.Terminal.Effect))
	}
	if _, err := canvas.ParseHex(c.Grid.Color); err != nil {
		errs = append(errs, fmt.Errorf("grid.color: %w", err))
	}
	if _, err := canvas.ParseHex(c.Terminal.Background); err != nil {
		errs = append(errs, fmt.Errorf("terminal.background: %w", err))
	}
	if c.Terminal.CellWidth < 1 || c.Terminal.CellHeight < 1 {
		errs = append(errs, fmt.Errorf("terminal: cell size %dx%d must be positive", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format: want json or console, got %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// KnownEffect reports whether name is a supported effect
func KnownEffect(name string) bool {
	for _, e := range Effects {
		if e == name {
			return true
		}
	}
	return false
}
