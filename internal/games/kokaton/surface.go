package kokaton

import "github.com/vovakirdan/kokaton-arcade/internal/core"

// Sprite identifies what a placement depicts. Front-ends resolve it to a drawable.
type Sprite int

const (
	SpriteAvatar Sprite = iota
	SpriteAvatarDefeated
	SpriteBomb
	SpriteBeam
	SpriteExplosion
	SpriteScore
)

// Placement is one draw request on the render surface.
type Placement struct {
	Sprite  Sprite
	Rect    core.Rect
	Variant int        // Orientation for avatar and beam, cycle index for explosions
	Color   core.Color // Bomb color
	Text    string     // Score text
}

// Surface receives placements in paint order; later placements occlude earlier ones.
type Surface interface {
	Place(p Placement)
}

// Controls is the per-tick input snapshot the session consumes.
// core.InputFrame implements it.
type Controls interface {
	IsHeld(a core.Action) bool
	Events() []core.Action
}

// Frame records the placements of one tick so a front-end can draw them later.
type Frame struct {
	items []Placement
}

// Place appends a placement.
func (f *Frame) Place(p Placement) {
	f.items = append(f.items, p)
}

// Reset empties the frame, keeping its storage.
func (f *Frame) Reset() {
	f.items = f.items[:0]
}

// Items returns the placements in paint order.
func (f *Frame) Items() []Placement {
	return f.items
}

// Discard is a surface that drops everything, for headless runs.
var Discard Surface = discard{}

type discard struct{}

func (discard) Place(Placement) {}

// Orientation is the discrete direction a sprite faces.
type Orientation int

const (
	OrientIdle Orientation = iota
	OrientRight
	OrientUpRight
	OrientUp
	OrientUpLeft
	OrientLeft
	OrientDownLeft
	OrientDown
	OrientDownRight
)

// orientations maps every unit displacement to its orientation.
var orientations = map[core.Vec]Orientation{
	{X: 0, Y: 0}:   OrientIdle,
	{X: 1, Y: 0}:   OrientRight,
	{X: 1, Y: -1}:  OrientUpRight,
	{X: 0, Y: -1}:  OrientUp,
	{X: -1, Y: -1}: OrientUpLeft,
	{X: -1, Y: 0}:  OrientLeft,
	{X: -1, Y: 1}:  OrientDownLeft,
	{X: 0, Y: 1}:   OrientDown,
	{X: 1, Y: 1}:   OrientDownRight,
}

// OrientationOf returns the orientation for a displacement of any magnitude.
func OrientationOf(v core.Vec) Orientation {
	return orientations[v.Sign()]
}

// Direction returns the unit displacement of o; idle faces right.
func (o Orientation) Direction() core.Vec {
	for v, ori := range orientations {
		if ori == o && !v.IsZero() {
			return v
		}
	}
	return core.Vec{X: 1}
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientIdle:
		return "idle"
	case OrientRight:
		return "right"
	case OrientUpRight:
		return "up-right"
	case OrientUp:
		return "up"
	case OrientUpLeft:
		return "up-left"
	case OrientLeft:
		return "left"
	case OrientDownLeft:
		return "down-left"
	case OrientDown:
		return "down"
	case OrientDownRight:
		return "down-right"
	default:
		return "unknown"
	}
}
