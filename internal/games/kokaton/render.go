package kokaton

import (
	"fmt"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

// Visual characters for rendering
const (
	AvatarFill   = '▓'
	DefeatedFill = '░'
	DefeatedMark = '✖'
	BombChar     = '●'
)

// avatarGlyphs draws the facing arrow at the avatar's center.
var avatarGlyphs = map[Orientation]rune{
	OrientIdle:      '▶',
	OrientRight:     '→',
	OrientUpRight:   '↗',
	OrientUp:        '↑',
	OrientUpLeft:    '↖',
	OrientLeft:      '←',
	OrientDownLeft:  '↙',
	OrientDown:      '↓',
	OrientDownRight: '↘',
}

// beamGlyphs follow the beam's direction of travel.
var beamGlyphs = map[Orientation]rune{
	OrientRight:     '═',
	OrientLeft:      '═',
	OrientUp:        '║',
	OrientDown:      '║',
	OrientUpRight:   '╱',
	OrientDownLeft:  '╱',
	OrientUpLeft:    '╲',
	OrientDownRight: '╲',
}

// ExplosionGlyphs are cycled by the explosion's variant.
var ExplosionGlyphs = []rune{'✶', '+', '✳', '×'}

// Render draws the last recorded frame scaled from field units to screen cells,
// plus the pause and game-over overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cfg := g.Config()
	view := newViewport(cfg.Field.Width, cfg.Field.Height, dst.Width(), dst.Height())

	for _, p := range g.frame.Items() {
		drawPlacement(dst, view, p)
	}

	state := g.State()
	switch {
	case state.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case state.GameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", state.Score))
	case state.Won:
		drawCenteredMessage(dst, "FIELD CLEARED", fmt.Sprintf("Score: %d  |  Press R to play again", state.Score))
	}
}

func drawPlacement(dst *core.Screen, view viewport, p Placement) {
	r := view.rect(p.Rect)

	switch p.Sprite {
	case SpriteAvatar:
		dst.DrawRect(r, AvatarFill, core.ColorYellow)
		cx, cy := r.Center()
		dst.SetColor(cx, cy, avatarGlyphs[Orientation(p.Variant)], core.ColorWhite)

	case SpriteAvatarDefeated:
		dst.DrawRect(r, DefeatedFill, core.ColorRed)
		cx, cy := r.Center()
		dst.SetColor(cx, cy, DefeatedMark, core.ColorRed)

	case SpriteBomb:
		dst.DrawRect(r, BombChar, p.Color)

	case SpriteBeam:
		glyph, ok := beamGlyphs[Orientation(p.Variant)]
		if !ok {
			glyph = '═'
		}
		dst.DrawRect(r, glyph, core.ColorCyan)

	case SpriteExplosion:
		glyph := ExplosionGlyphs[p.Variant%len(ExplosionGlyphs)]
		dst.DrawRect(r, glyph, core.ColorOrange)

	case SpriteScore:
		dst.DrawText(r.X, r.Y, p.Text, core.ColorCyan)
	}
}

// viewport maps field coordinates onto a screen of cells.
type viewport struct {
	fieldW, fieldH   int
	screenW, screenH int
}

func newViewport(fieldW, fieldH, screenW, screenH int) viewport {
	return viewport{fieldW: fieldW, fieldH: fieldH, screenW: screenW, screenH: screenH}
}

// rect converts a field rect to the cells it covers. Anything with an area
// covers at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0 := floorDiv(r.X*v.screenW, v.fieldW)
	y0 := floorDiv(r.Y*v.screenH, v.fieldH)
	x1 := ceilDiv(r.Right()*v.screenW, v.fieldW)
	y1 := ceilDiv(r.Bottom()*v.screenH, v.fieldH)

	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorGray)
}
