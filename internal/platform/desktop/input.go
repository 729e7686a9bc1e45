package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

// keyState is the slice of ebiten's input API the window reads.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Closing() bool
}

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Closing() bool                 { return ebiten.IsWindowBeingClosed() }

// binding maps keys to one action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// moveBindings are sampled every tick while held.
var moveBindings = []binding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

// eventBindings fire once per key press.
var eventBindings = []binding{
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// readInput samples the keyboard into an input frame. Closing the window
// counts as a quit request.
func readInput(ks keyState) core.InputFrame {
	in := core.NewInputFrame()

	for _, b := range moveBindings {
		for _, k := range b.keys {
			if ks.Pressed(k) {
				in.Hold(b.action)
				break
			}
		}
	}

	for _, b := range eventBindings {
		for _, k := range b.keys {
			if ks.JustPressed(k) {
				in.Set(b.action)
			}
		}
	}

	if ks.Closing() {
		in.Set(core.ActionQuit)
	}
	return in
}
