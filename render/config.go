package render

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/lixenwraith/pitchtrace/formation"
	"github.com/lixenwraith/pitchtrace/parameter"
)

// Mode selects which entities a frame renders
type Mode string

const (
	ModeAll    Mode = "all"
	ModeSingle Mode = "single"
)

// Config is the per-draw render configuration. The host owns it and may
// mutate it between frames; the engine keeps no other long-lived state
type Config struct {
	Mode          Mode             `toml:"mode" validate:"oneof=all single"`
	SelectedID    string           `toml:"selected_id"`
	Trails        bool             `toml:"trails"`
	TrailLength   int              `toml:"trail_length" validate:"gte=1"`
	WindowSeconds float64          `toml:"window_seconds" validate:"gt=0"`
	HeatZones     bool             `toml:"heat_zones"`
	Opacity       float64          `toml:"opacity" validate:"gte=0,lte=1"`
	Formation     formation.Scheme `toml:"formation"`
}

// DefaultConfig returns the viewer's starting configuration
func DefaultConfig() Config {
	return Config{
		Mode:          ModeAll,
		Trails:        true,
		TrailLength:   parameter.DefaultTrailLength,
		WindowSeconds: parameter.DefaultWindowSeconds,
		HeatZones:     true,
		Opacity:       0.7,
		Formation:     formation.SchemeDefault,
	}
}

// Normalize fills zero values with defaults and coerces an unknown
// formation scheme to the default. Never fails; bad input degrades
func (c *Config) Normalize() {
	if c.Mode == "" {
		c.Mode = ModeAll
	}
	if c.TrailLength < 1 {
		c.TrailLength = parameter.DefaultTrailLength
	}
	if c.WindowSeconds <= 0 {
		c.WindowSeconds = parameter.DefaultWindowSeconds
	}
	if c.Opacity <= 0 || c.Opacity > 1 {
		c.Opacity = 0.7
	}
	if !c.Formation.Valid() {
		c.Formation = formation.SchemeDefault
	}
}

// Validate checks the normalized config against its constraints
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// LoadConfig reads a TOML config file, normalizes and validates it
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
