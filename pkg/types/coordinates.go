package types

import (
	"fmt"

	pkgerrors "github.com/venuelane/seating-backend/pkg/errors"
)

// Coordinates places a seat on the venue image as percentages of the image
// size, independent of how large the image renders on any given surface.
type Coordinates struct {
	X        float64  `json:"x" validate:"min=0,max=100"`
	Y        float64  `json:"y" validate:"min=0,max=100"`
	Rotation *float64 `json:"rotation,omitempty"`
}

// InBounds reports whether both axes fall inside [0,100].
func (c Coordinates) InBounds() bool {
	return c.X >= 0 && c.X <= 100 && c.Y >= 0 && c.Y <= 100
}

// Validate rejects coordinates outside the percentage range.
func (c Coordinates) Validate() error {
	if !c.InBounds() {
		return pkgerrors.New(pkgerrors.CodeOutOfBounds, fmt.Sprintf("coordinates out of range: (%v, %v)", c.X, c.Y))
	}
	return nil
}
