package kokaton

import (
	"testing"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

// emptyFieldConfig returns the default config without any bombs.
func emptyFieldConfig() config.KokatonConfig {
	cfg := config.DefaultKokatonConfig()
	cfg.Hazards.Count = 0
	return cfg
}

func newTestSession(t *testing.T, cfg config.KokatonConfig) *Session {
	t.Helper()
	s, err := NewSession(cfg, 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// holding returns a frame with the given keys held.
func holding(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

// pressing returns a frame with the given events queued.
func pressing(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// countSprites counts placements of one sprite kind.
func countSprites(f *Frame, sprite Sprite) int {
	n := 0
	for _, p := range f.Items() {
		if p.Sprite == sprite {
			n++
		}
	}
	return n
}
