package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/games/kokaton"
)

// textScale enlarges the 7x13 bitmap font to suit the field resolution.
const textScale = 3

var (
	backgroundColor = color.RGBA{R: 24, G: 28, B: 40, A: 255}
	avatarColor     = color.RGBA{R: 250, G: 210, B: 80, A: 255}
	defeatedColor   = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	beamColor       = color.RGBA{R: 120, G: 230, B: 255, A: 255}
	explosionColor  = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	textColor       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	overlayColor    = color.RGBA{A: 160}
)

// palette resolves hazard colors to RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:     {R: 230, G: 60, B: 60, A: 255},
	core.ColorGreen:   {R: 60, G: 200, B: 90, A: 255},
	core.ColorBlue:    {R: 70, G: 110, B: 240, A: 255},
	core.ColorYellow:  {R: 240, G: 220, B: 60, A: 255},
	core.ColorMagenta: {R: 210, G: 70, B: 210, A: 255},
	core.ColorCyan:    {R: 60, G: 210, B: 220, A: 255},
	core.ColorWhite:   {R: 240, G: 240, B: 240, A: 255},
	core.ColorOrange:  {R: 255, G: 150, B: 40, A: 255},
	core.ColorGray:    {R: 140, G: 140, B: 140, A: 255},
}

func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return textColor
}

var fontFace = text.NewGoXFace(basicfont.Face7x13)

// drawText draws str with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, fontFace, op)
}

// drawCenteredText draws str horizontally centered on cx.
func drawCenteredText(screen *ebiten.Image, str string, cx, y float64, clr color.Color) {
	w, _ := text.Measure(str, fontFace, 0)
	drawText(screen, str, cx-w*textScale/2, y, clr)
}

// drawPlacement draws one placement at field resolution.
func drawPlacement(screen *ebiten.Image, p kokaton.Placement) {
	r := p.Rect
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	cx, cy := x+w/2, y+h/2

	switch p.Sprite {
	case kokaton.SpriteAvatar:
		vector.DrawFilledRect(screen, x, y, w, h, avatarColor, true)
		// Beak along the facing
		dir := kokaton.Orientation(p.Variant).Direction()
		ex := cx + float32(dir.X)*w/2
		ey := cy + float32(dir.Y)*h/2
		vector.StrokeLine(screen, cx, cy, ex, ey, 8, defeatedColor, true)
		vector.DrawFilledCircle(screen, cx, cy, w/8, backgroundColor, true)

	case kokaton.SpriteAvatarDefeated:
		vector.DrawFilledRect(screen, x, y, w, h, defeatedColor, true)
		vector.StrokeLine(screen, x, y, x+w, y+h, 6, backgroundColor, true)
		vector.StrokeLine(screen, x+w, y, x, y+h, 6, backgroundColor, true)

	case kokaton.SpriteBomb:
		vector.DrawFilledCircle(screen, cx, cy, w/2, colorOf(p.Color), true)

	case kokaton.SpriteBeam:
		vector.DrawFilledRect(screen, x, y, w, h, beamColor, true)

	case kokaton.SpriteExplosion:
		// Ring radius flickers with the variant
		ring := w / 2 * float32(p.Variant+2) / float32(len(kokaton.ExplosionGlyphs)+1)
		vector.StrokeCircle(screen, cx, cy, ring, 6, explosionColor, true)
		vector.DrawFilledCircle(screen, cx, cy, ring/3, explosionColor, true)

	case kokaton.SpriteScore:
		drawText(screen, p.Text, float64(r.X), float64(r.Y), textColor)
	}
}

// drawOverlay dims the field and shows a centered message.
func drawOverlay(screen *ebiten.Image, fieldW, fieldH int, title, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, float32(fieldW), float32(fieldH), overlayColor, false)
	drawCenteredText(screen, title, float64(fieldW)/2, float64(fieldH)/2-60, textColor)
	drawCenteredText(screen, subtitle, float64(fieldW)/2, float64(fieldH)/2+10, textColor)
}

func scoreLine(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
