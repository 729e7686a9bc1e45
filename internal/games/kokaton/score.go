package kokaton

import (
	"fmt"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

// Score counts destroyed bombs. It only ever grows by one.
type Score struct {
	value int
}

// Increment adds one point.
func (s *Score) Increment() { s.value++ }

// Value returns the current score.
func (s *Score) Value() int { return s.value }

// Update places the score text near the bottom-left corner of the field.
func (s *Score) Update(fieldH int, surf Surface) {
	surf.Place(Placement{
		Sprite: SpriteScore,
		Rect:   core.NewRect(100, fieldH-50, 0, 0),
		Text:   fmt.Sprintf("Score: %d", s.value),
	})
}
