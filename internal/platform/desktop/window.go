// Package desktop runs the arcade in a native window with Ebitengine.
// Unlike a terminal, a window reports real key-up events, so held keys are
// sampled directly every tick.
package desktop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/games/kokaton"
	"github.com/vovakirdan/kokaton-arcade/internal/replay"
	"github.com/vovakirdan/kokaton-arcade/internal/storage"
)

// Options tune a windowed session.
type Options struct {
	Store  *storage.Store // Where replays go; nil disables recording
	Record bool
	Logger *log.Logger
}

// Window implements ebiten.Game around a kokaton game.
type Window struct {
	game      *kokaton.Game
	cfg       config.KokatonConfig
	opts      Options
	keys      keyState
	recorder  *replay.Recorder
	lossTicks int // Ticks the final frame stays up after the game ends
	endTicks  int
}

// New creates a window for a session started from cfg and seed.
func New(cfg config.KokatonConfig, seed int64, opts Options) (*Window, error) {
	g, err := kokaton.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Session.TickRate
	rt.Seed = seed
	g.Reset(rt)
	if err := g.Err(); err != nil {
		return nil, err
	}

	w := &Window{
		game:      g,
		cfg:       cfg,
		opts:      opts,
		keys:      ebitenKeys{},
		lossTicks: delayTicks(cfg.Session.LossDelay, cfg.Session.TickRate),
	}
	if opts.Record && opts.Store != nil {
		w.recorder = replay.NewRecorder(seed, cfg)
	}
	return w, nil
}

// delayTicks converts a delay to whole ticks, rounding up.
func delayTicks(d time.Duration, tickRate int) int {
	if d <= 0 || tickRate <= 0 {
		return 0
	}
	tick := time.Second / time.Duration(tickRate)
	return int((d + tick - 1) / tick)
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	if state := w.game.State(); state.Ended() {
		// The closing request must still end the program while the loss frame is shown
		if state.Quit || w.keys.Closing() || w.endTicks >= w.lossTicks {
			return ebiten.Termination
		}
		w.endTicks++
		return nil
	}

	in := readInput(w.keys)
	if w.recorder != nil {
		w.recorder.Record(in)
	}

	state := w.game.Step(in).State
	if !state.Ended() {
		return nil
	}

	w.saveReplay(state)
	if state.Quit {
		return ebiten.Termination
	}
	return nil
}

// saveReplay stores the finished recording. Failures are logged and ignored.
func (w *Window) saveReplay(state core.GameState) {
	if w.recorder == nil {
		return
	}
	id, err := replay.Save(w.opts.Store, w.recorder.Recording(), state, w.game.Ticks())
	w.recorder = nil

	if w.opts.Logger == nil {
		return
	}
	if err != nil {
		w.opts.Logger.Warn("cannot save replay", "error", err)
		return
	}
	w.opts.Logger.Info("replay saved", "id", id)
}

// Draw paints the last recorded frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, p := range w.game.Frame().Items() {
		drawPlacement(screen, p)
	}

	fw, fh := w.cfg.Field.Width, w.cfg.Field.Height
	state := w.game.State()
	switch {
	case state.Paused:
		drawOverlay(screen, fw, fh, "PAUSED", "Press P to resume")
	case state.GameOver:
		drawOverlay(screen, fw, fh, "GAME OVER", scoreLine(state.Score))
	case state.Won:
		drawOverlay(screen, fw, fh, "FIELD CLEARED", scoreLine(state.Score))
	}
}

// Layout keeps the logical screen at field resolution; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Field.Width, w.cfg.Field.Height
}

// Game returns the game being played.
func (w *Window) Game() *kokaton.Game { return w.game }

// Run opens the window and blocks until the game ends or the window closes.
func Run(cfg config.KokatonConfig, seed int64, opts Options) error {
	w, err := New(cfg, seed, opts)
	if err != nil {
		return err
	}

	scale := cfg.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(cfg.Field.Width)*scale), int(float64(cfg.Field.Height)*scale))
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetTPS(cfg.Session.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
