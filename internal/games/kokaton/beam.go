package kokaton

import "github.com/vovakirdan/kokaton-arcade/internal/core"

// Beam is a projectile fired from the avatar. It flies straight until it leaves
// the field or hits a bomb.
type Beam struct {
	rect        core.Rect
	vel         core.Vec
	orientation Orientation
	destroyed   bool
}

// NewBeam fires a beam along the avatar's facing. The beam starts at the
// avatar's edge in the direction of travel: the avatar center pushed out by
// half its width and height along the unit facing.
//
// size is the beam's width×height when flying horizontally.
func NewBeam(a *Avatar, size core.Vec) *Beam {
	vel := a.Facing()
	dir := vel.Sign()

	cx, cy := a.rect.Center()
	cx += a.rect.W / 2 * dir.X
	cy += a.rect.H / 2 * dir.Y

	w, h := beamExtent(size, dir)
	return &Beam{
		rect:        core.RectAround(cx, cy, w, h),
		vel:         vel,
		orientation: OrientationOf(dir),
	}
}

// beamExtent returns the hitbox of a beam rotated to dir: transposed when
// vertical, the bounding square of the rotated sprite when diagonal.
func beamExtent(size, dir core.Vec) (int, int) {
	switch {
	case dir.Y == 0:
		return size.X, size.Y
	case dir.X == 0:
		return size.Y, size.X
	default:
		side := (size.X + size.Y) * 7 / 10
		return side, side
	}
}

// Update moves the beam by its velocity.
func (b *Beam) Update(s Surface) {
	b.rect = b.rect.Translate(b.vel.X, b.vel.Y)
	s.Place(Placement{Sprite: SpriteBeam, Rect: b.rect, Variant: int(b.orientation)})
}

// Gone reports whether the beam is entirely off one side of the field.
func (b *Beam) Gone(fieldW, fieldH int) bool {
	return b.rect.X > fieldW || b.rect.Right() < 0 || b.rect.Y > fieldH || b.rect.Bottom() < 0
}

// Rect returns the beam's bounding box.
func (b *Beam) Rect() core.Rect { return b.rect }

// Velocity returns the beam's fixed per-tick displacement.
func (b *Beam) Velocity() core.Vec { return b.vel }
