package kokaton

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

// maxSpawnAttempts bounds the re-rolls of a bomb placed on top of the avatar.
const maxSpawnAttempts = 32

// Outcome is the result of one tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit             // The player asked to leave
	OutcomeLoss             // A bomb touched the avatar
	OutcomeCleared          // No bombs left and the session is configured to end there
)

// Terminal reports whether no further ticks will run.
func (o Outcome) Terminal() bool {
	return o != OutcomeContinue
}

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeQuit:
		return "quit"
	case OutcomeLoss:
		return "loss"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Session owns every entity of one game and advances them tick by tick.
type Session struct {
	cfg        config.KokatonConfig
	rng        *rand.Rand
	avatar     *Avatar
	bombs      []*Bomb
	beams      []*Beam
	explosions []*Explosion
	score      Score
	ticks      int
	outcome    Outcome
}

// NewSession validates cfg and spawns the avatar and the initial bombs.
// The same cfg and seed always produce the same session.
func NewSession(cfg config.KokatonConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("kokaton: cannot start session: %w", err)
	}

	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		avatar: NewAvatar(
			cfg.Avatar.StartX, cfg.Avatar.StartY,
			cfg.Avatar.Width, cfg.Avatar.Height,
			cfg.Avatar.Step,
		),
		bombs: make([]*Bomb, 0, cfg.Hazards.Count),
	}
	s.spawnBombs()
	return s, nil
}

// spawnBombs creates the configured number of bombs. With safe spawn enabled a
// bomb overlapping the avatar is re-rolled a bounded number of times.
func (s *Session) spawnBombs() {
	w, h := s.cfg.Field.Width, s.cfg.Field.Height
	for i := 0; i < s.cfg.Hazards.Count; i++ {
		b := spawnBomb(s.rng, s.cfg.Hazards, w, h)
		if s.cfg.Session.SafeSpawn {
			for attempt := 0; attempt < maxSpawnAttempts && b.rect.Intersects(s.avatar.rect); attempt++ {
				b = spawnBomb(s.rng, s.cfg.Hazards, w, h)
			}
		}
		s.bombs = append(s.bombs, b)
	}
}

// RunTick advances the session by one tick and places everything it draws on surf.
//
// Order: input events, loss check, hit resolution, avatar move, compaction,
// entity updates, score. Once a terminal outcome is reached the session is frozen
// and every later call returns the same outcome.
func (s *Session) RunTick(in Controls, surf Surface) Outcome {
	if s.outcome.Terminal() {
		return s.outcome
	}
	s.ticks++

	w, h := s.cfg.Field.Width, s.cfg.Field.Height

	// Input events
	for _, ev := range in.Events() {
		switch ev {
		case core.ActionQuit:
			s.outcome = OutcomeQuit
			return s.outcome
		case core.ActionFire:
			s.beams = append(s.beams, NewBeam(s.avatar, s.beamSize()))
		}
	}

	// Loss check
	for _, b := range s.bombs {
		if b.rect.Intersects(s.avatar.rect) {
			s.avatar.Defeat(surf)
			s.score.Update(h, surf)
			s.outcome = OutcomeLoss
			return s.outcome
		}
	}

	s.resolveHits()
	s.avatar.Update(in, w, h, surf)
	s.compact()

	for _, b := range s.bombs {
		b.Update(w, h, surf)
	}
	for _, beam := range s.beams {
		beam.Update(surf)
	}
	for _, e := range s.explosions {
		e.Update(surf)
	}

	s.score.Update(h, surf)

	if s.cfg.Session.WinWhenCleared && len(s.bombs) == 0 {
		s.outcome = OutcomeCleared
	}
	return s.outcome
}

// resolveHits pairs each live bomb with the first live beam touching it.
// Both are only marked here; compact drops them, so neither can be matched twice.
func (s *Session) resolveHits() {
	for _, b := range s.bombs {
		if b.destroyed {
			continue
		}
		for _, beam := range s.beams {
			if beam.destroyed || !b.rect.Intersects(beam.rect) {
				continue
			}
			b.destroyed = true
			beam.destroyed = true
			s.explosions = append(s.explosions, NewExplosion(b,
				s.cfg.Explosion.Life, s.cfg.Explosion.Variants, s.cfg.Explosion.Size))
			s.score.Increment()
			break
		}
	}
}

// compact drops destroyed bombs and beams, beams off the field and expired explosions.
func (s *Session) compact() {
	w, h := s.cfg.Field.Width, s.cfg.Field.Height
	s.bombs = filter(s.bombs, func(b *Bomb) bool { return b.destroyed })
	s.beams = filter(s.beams, func(b *Beam) bool { return b.destroyed || b.Gone(w, h) })
	s.explosions = filter(s.explosions, (*Explosion).Expired)
}

// filter removes the items drop matches, in place.
func filter[T any](items []T, drop func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if !drop(it) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

func (s *Session) beamSize() core.Vec {
	return core.Vec{X: s.cfg.Beam.Width, Y: s.cfg.Beam.Height}
}

// Score returns the number of bombs destroyed so far.
func (s *Session) Score() int { return s.score.Value() }

// Outcome returns the latest tick outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Ticks returns the number of ticks run.
func (s *Session) Ticks() int { return s.ticks }

// Avatar returns the player sprite.
func (s *Session) Avatar() *Avatar { return s.avatar }

// Bombs returns the live bombs.
func (s *Session) Bombs() []*Bomb { return s.bombs }

// Beams returns the live beams.
func (s *Session) Beams() []*Beam { return s.beams }

// Explosions returns the live explosions.
func (s *Session) Explosions() []*Explosion { return s.explosions }

// Config returns the configuration the session was started with.
func (s *Session) Config() config.KokatonConfig { return s.cfg }
