package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/kokaton.yaml
var defaultKokatonYAML []byte

// DefaultKokatonConfig returns the default Kokaton configuration.
func DefaultKokatonConfig() KokatonConfig {
	return KokatonConfig{
		Field: KokatonField{
			Width:  1600,
			Height: 900,
		},
		Avatar: KokatonAvatar{
			Width:  100,
			Height: 100,
			StartX: 900,
			StartY: 400,
			Step:   5,
		},
		Hazards: KokatonHazards{
			Count:  5,
			Radii:  []int{10, 20, 30, 40, 50},
			Speeds: []int{-5, -4, -3, -2, -1, 1, 2, 3, 4, 5},
		},
		Beam: KokatonBeam{
			Width:  80,
			Height: 30,
		},
		Explosion: KokatonExplosion{
			Life:     100,
			Variants: 4,
			Size:     100,
		},
		Session: KokatonSession{
			TickRate:       50,
			LossDelay:      time.Second,
			WinWhenCleared: false,
			SafeSpawn:      true,
		},
		Terminal: KokatonTerminal{
			HoldTicks: 8,
		},
		Window: KokatonWindow{
			Scale: 0.75,
		},
	}
}
