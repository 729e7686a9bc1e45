package kokaton

import "github.com/vovakirdan/kokaton-arcade/internal/core"

// moveKeys maps each held direction to its unit displacement.
var moveKeys = []struct {
	action core.Action
	dir    core.Vec
}{
	{core.ActionUp, core.Vec{X: 0, Y: -1}},
	{core.ActionDown, core.Vec{X: 0, Y: 1}},
	{core.ActionLeft, core.Vec{X: -1, Y: 0}},
	{core.ActionRight, core.Vec{X: 1, Y: 0}},
}

// Avatar is the player-controlled sprite.
type Avatar struct {
	rect        core.Rect
	step        int
	facing      core.Vec
	orientation Orientation
	alive       bool
}

// NewAvatar creates an avatar of size w×h centered on (cx, cy), facing right.
func NewAvatar(cx, cy, w, h, step int) *Avatar {
	return &Avatar{
		rect:        core.RectAround(cx, cy, w, h),
		step:        step,
		facing:      core.Vec{X: step},
		orientation: OrientIdle,
		alive:       true,
	}
}

// Update moves the avatar by the sum of the held directions.
//
// The move is all-or-nothing: if the displaced rect leaves the field on either
// axis the avatar stays put. The attempted displacement still sets the
// orientation and the facing, and a zero displacement resets the facing to
// the right rather than keeping the previous one.
func (a *Avatar) Update(in Controls, fieldW, fieldH int, s Surface) {
	var move core.Vec
	for _, k := range moveKeys {
		if in.IsHeld(k.action) {
			move = move.Add(core.Vec{X: k.dir.X * a.step, Y: k.dir.Y * a.step})
		}
	}

	next := a.rect.Translate(move.X, move.Y)
	if inX, inY := CheckBound(next, fieldW, fieldH); inX && inY {
		a.rect = next
	}

	a.orientation = OrientationOf(move)
	if move.IsZero() {
		move = core.Vec{X: a.step}
	}
	a.facing = move

	s.Place(Placement{Sprite: SpriteAvatar, Rect: a.rect, Variant: int(a.orientation)})
}

// Defeat marks the avatar dead and places the defeated sprite.
func (a *Avatar) Defeat(s Surface) {
	a.alive = false
	s.Place(Placement{Sprite: SpriteAvatarDefeated, Rect: a.rect, Variant: int(a.orientation)})
}

// Rect returns the avatar's bounding box.
func (a *Avatar) Rect() core.Rect { return a.rect }

// Facing returns the direction new beams travel in. Never zero.
func (a *Avatar) Facing() core.Vec { return a.facing }

// Orientation returns the orientation selected by the last update.
func (a *Avatar) Orientation() Orientation { return a.orientation }

// Alive reports whether the avatar has not been hit.
func (a *Avatar) Alive() bool { return a.alive }
