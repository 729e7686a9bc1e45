// Package config provides YAML-based game configuration loading and
// validation for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// KokatonConfig contains all configuration for the Kokaton game.
type KokatonConfig struct {
	Field     KokatonField     `yaml:"field"`
	Avatar    KokatonAvatar    `yaml:"avatar"`
	Hazards   KokatonHazards   `yaml:"hazards"`
	Beam      KokatonBeam      `yaml:"beam"`
	Explosion KokatonExplosion `yaml:"explosion"`
	Session   KokatonSession   `yaml:"session"`
	Terminal  KokatonTerminal  `yaml:"terminal"`
	Window    KokatonWindow    `yaml:"window"`
}

// KokatonField defines the play-field geometry in field units (pixels).
type KokatonField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// KokatonAvatar defines the player sprite.
type KokatonAvatar struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	StartX int `yaml:"start_x"` // Center x at session start
	StartY int `yaml:"start_y"` // Center y at session start
	Step   int `yaml:"step"`    // Displacement per held key per tick
}

// KokatonHazards defines how bombs are spawned.
type KokatonHazards struct {
	Count  int   `yaml:"count"`
	Radii  []int `yaml:"radii"`
	Speeds []int `yaml:"speeds"` // Per-axis velocity choices, zero not allowed
}

// KokatonBeam defines the beam hitbox for horizontal travel.
type KokatonBeam struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// KokatonExplosion defines the explosion effect.
type KokatonExplosion struct {
	Life     int `yaml:"life"`     // Ticks until removal
	Variants int `yaml:"variants"` // Number of cycling presentation variants
	Size     int `yaml:"size"`     // Side of the square effect rect
}

// KokatonSession defines session-level behaviour.
type KokatonSession struct {
	TickRate       int           `yaml:"tick_rate"`
	LossDelay      time.Duration `yaml:"loss_delay"`
	WinWhenCleared bool          `yaml:"win_when_cleared"`
	SafeSpawn      bool          `yaml:"safe_spawn"`
}

// KokatonTerminal defines terminal front-end tuning.
type KokatonTerminal struct {
	// HoldTicks is how long a key press counts as held. Terminals report
	// presses and auto-repeats but never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// KokatonWindow defines desktop front-end tuning.
type KokatonWindow struct {
	Scale float64 `yaml:"scale"` // Window size relative to the field
}

// Validate reports the first malformed setting.
// A config that fails validation must not start a session.
func (c KokatonConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return invalid("field must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	case c.Hazards.Count < 0:
		return invalid("hazard count must not be negative, got %d", c.Hazards.Count)
	case len(c.Hazards.Radii) == 0:
		return invalid("hazard radii must not be empty")
	case len(c.Hazards.Speeds) == 0:
		return invalid("hazard speeds must not be empty")
	case c.Avatar.Width <= 0 || c.Avatar.Height <= 0:
		return invalid("avatar size must be positive, got %dx%d", c.Avatar.Width, c.Avatar.Height)
	case c.Avatar.Width > c.Field.Width || c.Avatar.Height > c.Field.Height:
		return invalid("avatar %dx%d does not fit the field", c.Avatar.Width, c.Avatar.Height)
	case c.Avatar.Step <= 0:
		return invalid("avatar step must be positive, got %d", c.Avatar.Step)
	case c.Beam.Width <= 0 || c.Beam.Height <= 0:
		return invalid("beam size must be positive, got %dx%d", c.Beam.Width, c.Beam.Height)
	case c.Explosion.Life <= 0:
		return invalid("explosion life must be positive, got %d", c.Explosion.Life)
	case c.Explosion.Variants <= 0:
		return invalid("explosion variants must be positive, got %d", c.Explosion.Variants)
	case c.Explosion.Size <= 0:
		return invalid("explosion size must be positive, got %d", c.Explosion.Size)
	case c.Session.TickRate <= 0:
		return invalid("tick rate must be positive, got %d", c.Session.TickRate)
	case c.Session.LossDelay < 0:
		return invalid("loss delay must not be negative, got %s", c.Session.LossDelay)
	}

	for _, r := range c.Hazards.Radii {
		if r <= 0 {
			return invalid("hazard radius must be positive, got %d", r)
		}
	}
	for _, v := range c.Hazards.Speeds {
		if v == 0 {
			return invalid("hazard speeds must not contain zero")
		}
	}

	// The avatar must start fully inside the field.
	x := c.Avatar.StartX - c.Avatar.Width/2
	y := c.Avatar.StartY - c.Avatar.Height/2
	if x < 0 || y < 0 || x+c.Avatar.Width > c.Field.Width || y+c.Avatar.Height > c.Field.Height {
		return invalid("avatar start (%d, %d) leaves the field", c.Avatar.StartX, c.Avatar.StartY)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
