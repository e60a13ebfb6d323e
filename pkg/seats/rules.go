package seats

import (
	"math"
	"time"

	"github.com/venuelane/seating-backend/pkg/enums"
)

// DefaultAdjacencyDistancePercent is the coordinate-distance fallback for
// the adjacency test. Tuned for row-based theater layouts; venues with
// table seating should configure their own threshold.
const DefaultAdjacencyDistancePercent = 10.0

// CanSelect reports whether a customer may pick the seat right now. A held
// seat whose expiry already passed is still not selectable here; callers
// are expected to refresh from inventory and re-evaluate.
func CanSelect(seat Seat, now time.Time) bool {
	if seat.Status != enums.SeatStatusAvailable {
		return false
	}
	if !seat.Availability.IsAvailable {
		return false
	}
	if seat.Availability.HoldExpiry != nil && !seat.Availability.HoldExpiry.After(now) {
		return false
	}
	return true
}

// AreAdjacent reports whether two seats sit next to each other: either
// consecutive numbers in the same section and row, or within
// distancePercent of each other on the venue image. Symmetric in its
// arguments.
func AreAdjacent(a, b Seat, distancePercent float64) bool {
	if a.Section == b.Section && a.Row == b.Row {
		na, okA := ParseSeatNumber(a.SeatNumber)
		nb, okB := ParseSeatNumber(b.SeatNumber)
		if okA && okB {
			diff := na - nb
			if diff == 1 || diff == -1 {
				return true
			}
		}
	}
	dx := a.Coordinates.X - b.Coordinates.X
	dy := a.Coordinates.Y - b.Coordinates.Y
	return math.Hypot(dx, dy) <= distancePercent
}
