package kokaton

import (
	"testing"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

func TestCheckBound(t *testing.T) {
	tests := []struct {
		name     string
		r        core.Rect
		inX, inY bool
	}{
		{"inside", core.NewRect(10, 10, 20, 20), true, true},
		{"touching all edges", core.NewRect(0, 0, 1600, 900), true, true},
		{"past right edge", core.NewRect(1590, 10, 20, 20), false, true},
		{"past left edge", core.NewRect(-1, 10, 20, 20), false, true},
		{"past top edge", core.NewRect(10, -1, 20, 20), true, false},
		{"past bottom edge", core.NewRect(10, 890, 20, 20), true, false},
		{"past corner", core.NewRect(1590, 890, 20, 20), false, false},
		{"larger than field", core.NewRect(-10, -10, 2000, 1000), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inX, inY := CheckBound(tc.r, 1600, 900)
			if inX != tc.inX || inY != tc.inY {
				t.Errorf("CheckBound(%+v) = (%v, %v), expected (%v, %v)", tc.r, inX, inY, tc.inX, tc.inY)
			}
		})
	}
}
