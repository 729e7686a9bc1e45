package kokaton

import "github.com/vovakirdan/kokaton-arcade/internal/core"

// CheckBound reports, per axis, whether r lies fully inside a w×h field.
// Edges touching the field border count as inside.
func CheckBound(r core.Rect, w, h int) (inX, inY bool) {
	inX = r.X >= 0 && r.Right() <= w
	inY = r.Y >= 0 && r.Bottom() <= h
	return inX, inY
}
