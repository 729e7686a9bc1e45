// Package kokaton implements "Fight Kokaton": the player steers a bird around
// the field, dodging bouncing bombs and shooting them down with beams.
//
// Session holds the simulation; Game adapts it to the arcade registry.
package kokaton

import (
	"fmt"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/registry"
)

// GameID is the registry identifier.
const GameID = "kokaton"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements registry.Game on top of a Session.
type Game struct {
	cfg       config.KokatonConfig
	hasConfig bool
	session   *Session
	frame     Frame
	paused    bool
	err       error
	tickCount int
}

// New creates a game that loads its config on first Reset, from the path set
// via SetConfigPath and the usual search order. An unreadable or invalid config
// falls back to the defaults; callers that must reject bad configs use
// NewWithConfig.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit config, rejecting invalid ones.
func NewWithConfig(cfg config.KokatonConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("kokaton: %w", err)
	}
	return &Game{cfg: cfg, hasConfig: true}, nil
}

// loadConfig resolves the config once.
func (g *Game) loadConfig() {
	if g.hasConfig {
		return
	}
	cfg, err := config.LoadKokaton(configPath)
	if err != nil || cfg.Validate() != nil {
		cfg = config.DefaultKokatonConfig()
	}
	g.cfg = cfg
	g.hasConfig = true
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fight Kokaton"
}

// Reset starts a fresh session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	g.paused = false
	g.tickCount = 0
	g.frame.Reset()

	g.session, g.err = NewSession(g.cfg, cfg.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.session.Outcome().Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		if in.Has(core.ActionQuit) {
			g.session.RunTick(quitOnly{}, Discard)
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.frame.Reset()
	g.session.RunTick(in, &g.frame)

	return core.StepResult{State: g.State()}
}

// quitOnly is the input used to leave from the pause screen.
type quitOnly struct{}

func (quitOnly) IsHeld(core.Action) bool { return false }
func (quitOnly) Events() []core.Action   { return []core.Action{core.ActionQuit} }

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Quit: true}
	}
	outcome := g.session.Outcome()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: outcome == OutcomeLoss,
		Won:      outcome == OutcomeCleared,
		Quit:     outcome == OutcomeQuit,
		Paused:   g.paused,
	}
}

// Ticks returns the number of unpaused ticks since the last Reset.
func (g *Game) Ticks() int { return g.tickCount }

// Frame returns the placements recorded by the last tick.
func (g *Game) Frame() *Frame { return &g.frame }

// Session returns the running session, nil before Reset or after a failed one.
func (g *Game) Session() *Session { return g.session }

// Config returns the game configuration.
func (g *Game) Config() config.KokatonConfig {
	g.loadConfig()
	return g.cfg
}

// Err returns the error of the last Reset, if any.
func (g *Game) Err() error { return g.err }

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
