package kokaton

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/registry"
)

func newTestGame(t *testing.T, cfg config.KokatonConfig, seed int64) *Game {
	t.Helper()
	g, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)
	if g.Err() != nil {
		t.Fatalf("Reset() failed: %v", g.Err())
	}
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q should be registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != GameID || g.Title() != "Fight Kokaton" {
		t.Errorf("unexpected game %q / %q", g.ID(), g.Title())
	}
}

func TestNewWithConfigRejectsInvalid(t *testing.T) {
	cfg := config.DefaultKokatonConfig()
	cfg.Avatar.Step = 0

	if _, err := NewWithConfig(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewWithConfig() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestGameStateBeforeReset(t *testing.T) {
	g := New()
	if !g.State().Quit {
		t.Error("a game without a session should report quit")
	}
	if res := g.Step(pressing(core.ActionFire)); !res.State.Quit {
		t.Error("Step before Reset should be a no-op reporting quit")
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, config.DefaultKokatonConfig(), 12345)
	g2 := newTestGame(t, config.DefaultKokatonConfig(), 12345)

	inputs := []core.InputFrame{
		holding(core.ActionUp),
		pressing(core.ActionFire),
		holding(core.ActionLeft, core.ActionDown),
		holding(),
	}
	for i := 0; i < 400; i++ {
		in := inputs[i%len(inputs)]
		g1.Step(in)
		g2.Step(in)
	}

	if g1.State() != g2.State() {
		t.Errorf("states diverged: %+v vs %+v", g1.State(), g2.State())
	}
	if g1.Session().Avatar().Rect() != g2.Session().Avatar().Rect() {
		t.Error("avatars diverged")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, emptyFieldConfig(), 1)

	g.Step(holding(core.ActionLeft))
	if g.Ticks() != 1 {
		t.Fatalf("Ticks() = %d, expected 1", g.Ticks())
	}

	g.Step(pressing(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Session().Avatar().Rect()
	for i := 0; i < 10; i++ {
		g.Step(holding(core.ActionLeft))
	}
	if g.Ticks() != 1 || g.Session().Ticks() != 1 {
		t.Errorf("paused game should not tick, got %d/%d", g.Ticks(), g.Session().Ticks())
	}
	if g.Session().Avatar().Rect() != before {
		t.Error("avatar moved while paused")
	}

	g.Step(pressing(core.ActionPause))
	if g.State().Paused || g.Ticks() != 2 {
		t.Errorf("unpausing should resume on the same step, paused=%v ticks=%d", g.State().Paused, g.Ticks())
	}
}

func TestGameQuitWhilePaused(t *testing.T) {
	g := newTestGame(t, emptyFieldConfig(), 1)

	g.Step(pressing(core.ActionPause))
	res := g.Step(pressing(core.ActionQuit))

	if !res.State.Quit {
		t.Error("quit should work from the pause screen")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, emptyFieldConfig(), 1)
	g.session.bombs = []*Bomb{NewBomb(core.NewRect(860, 360, 20, 20), core.Vec{X: 1, Y: 1}, core.ColorRed)}

	if res := g.Step(holding()); !res.State.GameOver {
		t.Fatal("bomb on the avatar should end the game")
	}
	if res := g.Step(holding(core.ActionUp)); !res.State.GameOver || g.Ticks() != 1 {
		t.Error("ended game should ignore further steps")
	}

	g.Reset(core.DefaultConfig())
	if g.State().GameOver || g.State().Score != 0 || g.Ticks() != 0 {
		t.Errorf("Reset should start a fresh game, got %+v", g.State())
	}
	if !g.Session().Avatar().Alive() {
		t.Error("avatar should be alive after Reset")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, emptyFieldConfig(), 1)
	g.Step(holding())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Score sits at field (100, 850): cell (5, 22) on an 80x24 screen
	if row := screen.Row(22); !strings.HasPrefix(row[5:], "Score: 0") {
		t.Errorf("score row = %q", row)
	}
	// Avatar 850..950 x 350..450 covers cells 42..47 x 9..11
	if cell := screen.GetCell(42, 9); cell.Rune != AvatarFill || cell.Color != core.ColorYellow {
		t.Errorf("expected avatar fill at (42, 9), got %+v", cell)
	}
	if !strings.ContainsRune(screen.String(), avatarGlyphs[OrientIdle]) {
		t.Error("idle avatar glyph should be drawn")
	}
}

func TestGameRenderOverlays(t *testing.T) {
	g := newTestGame(t, emptyFieldConfig(), 1)

	g.Step(pressing(core.ActionPause))
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause overlay")
	}

	g.Step(pressing(core.ActionPause))
	g.session.bombs = []*Bomb{NewBomb(core.NewRect(860, 360, 20, 20), core.Vec{X: 1, Y: 1}, core.ColorRed)}
	g.Step(holding())
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("lost game should show the game over overlay")
	}
	if strings.ContainsRune(out, BombChar) {
		t.Error("loss frame should not draw bombs")
	}
}

func TestViewportRect(t *testing.T) {
	v := newViewport(1600, 900, 80, 24)

	tests := []struct {
		in, out core.Rect
	}{
		{core.NewRect(0, 0, 1600, 900), core.NewRect(0, 0, 80, 24)},
		{core.NewRect(850, 350, 100, 100), core.NewRect(42, 9, 6, 3)},
		// Small rects still cover one cell
		{core.NewRect(5, 5, 2, 2), core.NewRect(0, 0, 1, 1)},
		{core.NewRect(-40, -75, 20, 37), core.NewRect(-2, -2, 1, 1)},
		// Text anchors keep their cell row
		{core.NewRect(100, 850, 0, 0), core.NewRect(5, 22, 0, 1)},
	}

	for _, tc := range tests {
		if got := v.rect(tc.in); got != tc.out {
			t.Errorf("rect(%+v) = %+v, expected %+v", tc.in, got, tc.out)
		}
	}
}
