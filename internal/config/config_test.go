package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultKokatonConfigIsValid(t *testing.T) {
	if err := DefaultKokatonConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseKokaton(defaultKokatonYAML)
	if err != nil {
		t.Fatalf("ParseKokaton(embedded) failed: %v", err)
	}

	def := DefaultKokatonConfig()
	if cfg.Field != def.Field {
		t.Errorf("field = %+v, expected %+v", cfg.Field, def.Field)
	}
	if cfg.Hazards.Count != def.Hazards.Count {
		t.Errorf("hazard count = %d, expected %d", cfg.Hazards.Count, def.Hazards.Count)
	}
	if len(cfg.Hazards.Speeds) != len(def.Hazards.Speeds) {
		t.Errorf("speeds = %v, expected %v", cfg.Hazards.Speeds, def.Hazards.Speeds)
	}
	if cfg.Session.LossDelay != time.Second {
		t.Errorf("loss delay = %s, expected 1s", cfg.Session.LossDelay)
	}
	if cfg.Explosion != def.Explosion {
		t.Errorf("explosion = %+v, expected %+v", cfg.Explosion, def.Explosion)
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KokatonConfig)
	}{
		{"zero width", func(c *KokatonConfig) { c.Field.Width = 0 }},
		{"negative height", func(c *KokatonConfig) { c.Field.Height = -900 }},
		{"negative hazard count", func(c *KokatonConfig) { c.Hazards.Count = -1 }},
		{"empty radii", func(c *KokatonConfig) { c.Hazards.Radii = nil }},
		{"zero speed", func(c *KokatonConfig) { c.Hazards.Speeds = []int{-1, 0, 1} }},
		{"avatar wider than field", func(c *KokatonConfig) { c.Avatar.Width = 2000 }},
		{"avatar starts outside", func(c *KokatonConfig) { c.Avatar.StartX = 10 }},
		{"zero step", func(c *KokatonConfig) { c.Avatar.Step = 0 }},
		{"zero explosion life", func(c *KokatonConfig) { c.Explosion.Life = 0 }},
		{"zero tick rate", func(c *KokatonConfig) { c.Session.TickRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKokatonConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateAllowsZeroHazards(t *testing.T) {
	cfg := DefaultKokatonConfig()
	cfg.Hazards.Count = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero hazards should be valid: %v", err)
	}
}

func TestLoadKokatonCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kokaton.yaml")
	data := []byte("hazards:\n  count: 9\nsession:\n  win_when_cleared: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKokaton(path)
	if err != nil {
		t.Fatalf("LoadKokaton() failed: %v", err)
	}
	if cfg.Hazards.Count != 9 {
		t.Errorf("hazard count = %d, expected 9", cfg.Hazards.Count)
	}
	if !cfg.Session.WinWhenCleared {
		t.Error("win_when_cleared should be true")
	}
	// Untouched keys keep their defaults
	if cfg.Field.Width != 1600 || cfg.Avatar.Step != 5 {
		t.Errorf("unset keys should keep defaults, got field=%+v step=%d", cfg.Field, cfg.Avatar.Step)
	}
}

func TestLoadKokatonMissingFile(t *testing.T) {
	_, err := LoadKokaton(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadKokaton() should fail for a missing custom path")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	def := DefaultKokatonConfig()
	def.Hazards.Count = 3

	data, err := MarshalKokaton(def)
	if err != nil {
		t.Fatalf("MarshalKokaton() failed: %v", err)
	}
	cfg, err := ParseKokaton(data)
	if err != nil {
		t.Fatalf("ParseKokaton() failed: %v", err)
	}
	if cfg.Hazards.Count != 3 || cfg.Session.LossDelay != def.Session.LossDelay {
		t.Errorf("round trip lost settings: %+v", cfg)
	}
}
