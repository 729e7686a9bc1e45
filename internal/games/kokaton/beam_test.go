package kokaton

import (
	"testing"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

var beamSize = core.Vec{X: 80, Y: 30}

func TestBeamSpawnsAtAvatarEdge(t *testing.T) {
	a := NewAvatar(900, 400, 100, 100, 5)
	b := NewBeam(a, beamSize)

	if b.Velocity() != (core.Vec{X: 5}) {
		t.Errorf("Velocity() = %v, expected the default facing (5,0)", b.Velocity())
	}
	if expected := core.NewRect(910, 385, 80, 30); b.Rect() != expected {
		t.Errorf("Rect() = %+v, expected %+v", b.Rect(), expected)
	}
}

func TestBeamFollowsFacing(t *testing.T) {
	a := NewAvatar(900, 400, 100, 100, 5)
	a.Update(holding(core.ActionUp), 1600, 900, Discard)

	b := NewBeam(a, beamSize)
	if b.Velocity() != a.Facing() {
		t.Errorf("Velocity() = %v, expected facing %v", b.Velocity(), a.Facing())
	}
	// Avatar center is now (900, 395); vertical beams are transposed
	if expected := core.NewRect(885, 305, 30, 80); b.Rect() != expected {
		t.Errorf("Rect() = %+v, expected %+v", b.Rect(), expected)
	}
}

func TestBeamExtent(t *testing.T) {
	tests := []struct {
		dir  core.Vec
		w, h int
	}{
		{core.Vec{X: 1}, 80, 30},
		{core.Vec{X: -1}, 80, 30},
		{core.Vec{Y: 1}, 30, 80},
		{core.Vec{Y: -1}, 30, 80},
		{core.Vec{X: 1, Y: -1}, 77, 77},
		{core.Vec{X: -1, Y: 1}, 77, 77},
	}

	for _, tc := range tests {
		w, h := beamExtent(beamSize, tc.dir)
		if w != tc.w || h != tc.h {
			t.Errorf("beamExtent(%v) = %dx%d, expected %dx%d", tc.dir, w, h, tc.w, tc.h)
		}
	}
}

func TestBeamUpdateAndGone(t *testing.T) {
	tests := []struct {
		name string
		rect core.Rect
		gone bool
	}{
		{"inside", core.NewRect(100, 100, 80, 30), false},
		{"touching right edge", core.NewRect(1600, 100, 80, 30), false},
		{"past right edge", core.NewRect(1601, 100, 80, 30), true},
		{"right at zero", core.NewRect(-80, 100, 80, 30), false},
		{"past left edge", core.NewRect(-81, 100, 80, 30), true},
		{"past bottom edge", core.NewRect(100, 901, 80, 30), true},
		{"past top edge", core.NewRect(100, -31, 80, 30), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Beam{rect: tc.rect}
			if got := b.Gone(1600, 900); got != tc.gone {
				t.Errorf("Gone() = %v, expected %v", got, tc.gone)
			}
		})
	}

	b := &Beam{rect: core.NewRect(100, 100, 80, 30), vel: core.Vec{X: -5, Y: 5}, orientation: OrientDownLeft}
	var f Frame
	b.Update(&f)
	if b.Rect().X != 95 || b.Rect().Y != 105 {
		t.Errorf("Update should move by velocity, got %+v", b.Rect())
	}
	if items := f.Items(); len(items) != 1 || items[0].Variant != int(OrientDownLeft) {
		t.Errorf("unexpected placements %+v", items)
	}
}
