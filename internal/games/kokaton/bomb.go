package kokaton

import (
	"math/rand"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

// Bomb is a self-propelled hazard that bounces off the field edges.
type Bomb struct {
	rect      core.Rect
	vel       core.Vec
	radius    int
	color     core.Color
	destroyed bool
}

// NewBomb creates a bomb with the given geometry. Mostly useful for tests and replays.
func NewBomb(rect core.Rect, vel core.Vec, color core.Color) *Bomb {
	return &Bomb{rect: rect, vel: vel, radius: rect.W / 2, color: color}
}

// spawnBomb creates a bomb with random radius, color, position and velocity.
// The center is uniform over the whole field, so a bomb may start astride an edge.
func spawnBomb(rng *rand.Rand, hz config.KokatonHazards, fieldW, fieldH int) *Bomb {
	radius := hz.Radii[rng.Intn(len(hz.Radii))]
	color := core.HazardColors[rng.Intn(len(core.HazardColors))]
	cx, cy := rng.Intn(fieldW+1), rng.Intn(fieldH+1)
	vx := hz.Speeds[rng.Intn(len(hz.Speeds))]
	vy := hz.Speeds[rng.Intn(len(hz.Speeds))]

	return &Bomb{
		rect:   core.RectAround(cx, cy, 2*radius, 2*radius),
		vel:    core.Vec{X: vx, Y: vy},
		radius: radius,
		color:  color,
	}
}

// Update reflects the velocity on every axis the bomb is already outside of,
// then moves. Reflection reacts to a crossing on the tick after it happens;
// it never prevents one.
func (b *Bomb) Update(fieldW, fieldH int, s Surface) {
	inX, inY := CheckBound(b.rect, fieldW, fieldH)
	if !inX {
		b.vel.X = -b.vel.X
	}
	if !inY {
		b.vel.Y = -b.vel.Y
	}
	b.rect = b.rect.Translate(b.vel.X, b.vel.Y)

	s.Place(Placement{Sprite: SpriteBomb, Rect: b.rect, Color: b.color})
}

// Rect returns the bomb's bounding box.
func (b *Bomb) Rect() core.Rect { return b.rect }

// Velocity returns the current per-tick displacement.
func (b *Bomb) Velocity() core.Vec { return b.vel }

// Radius returns the drawn circle's radius.
func (b *Bomb) Radius() int { return b.radius }

// Color returns the bomb's color.
func (b *Bomb) Color() core.Color { return b.color }
