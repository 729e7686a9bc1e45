package replay

import (
	"fmt"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/games/kokaton"
)

// Player feeds a recording back into a fresh game, one frame per step.
type Player struct {
	rec  Recording
	game *kokaton.Game
	pos  int
}

// NewPlayer creates a game from the recorded config and seed.
func NewPlayer(rec Recording) (*Player, error) {
	g, err := kokaton.NewWithConfig(rec.Config)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	rt := core.DefaultConfig()
	rt.Seed = rec.Seed
	g.Reset(rt)
	if err := g.Err(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	return &Player{rec: rec, game: g}, nil
}

// Step plays the next frame. It returns false once the recording is exhausted
// or the game has ended.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}
	p.game.Step(p.rec.Frames[p.pos].Input())
	p.pos++
	return true
}

// Done reports whether nothing is left to play.
func (p *Player) Done() bool {
	return p.pos >= len(p.rec.Frames) || p.game.State().Ended()
}

// Game returns the game being driven.
func (p *Player) Game() *kokaton.Game { return p.game }

// Position returns the number of frames played.
func (p *Player) Position() int { return p.pos }

// Len returns the number of recorded frames.
func (p *Player) Len() int { return len(p.rec.Frames) }

// Result summarizes a playback.
type Result struct {
	State core.GameState
	Steps int
	Ticks int
}

// Run plays the whole recording without a display.
func Run(rec Recording) (Result, error) {
	p, err := NewPlayer(rec)
	if err != nil {
		return Result{}, err
	}
	for p.Step() {
	}
	return Result{State: p.game.State(), Steps: p.pos, Ticks: p.game.Ticks()}, nil
}
