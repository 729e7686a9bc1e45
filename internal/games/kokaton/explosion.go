package kokaton

import "github.com/vovakirdan/kokaton-arcade/internal/core"

// Explosion marks where a bomb was destroyed. It lives a fixed number of ticks.
type Explosion struct {
	rect     core.Rect
	life     int
	variants int
}

// NewExplosion creates an explosion centered on the bomb's last position.
func NewExplosion(b *Bomb, life, variants, size int) *Explosion {
	cx, cy := b.rect.Center()
	return &Explosion{
		rect:     core.RectAround(cx, cy, size, size),
		life:     life,
		variants: variants,
	}
}

// Update places the variant selected by the remaining life, then ages by one tick.
func (e *Explosion) Update(s Surface) {
	s.Place(Placement{Sprite: SpriteExplosion, Rect: e.rect, Variant: e.life % e.variants})
	e.life--
}

// Expired reports whether the explosion has run out of life.
func (e *Explosion) Expired() bool { return e.life <= 0 }

// Life returns the remaining ticks.
func (e *Explosion) Life() int { return e.life }

// Rect returns the effect's bounding box.
func (e *Explosion) Rect() core.Rect { return e.rect }
