package seats

import "github.com/venuelane/seating-backend/pkg/enums"

// Criteria narrows a seat search. Every field is optional; supplied fields
// are ANDed together.
type Criteria struct {
	Status      *enums.SeatStatus
	Section     *string
	MinPrice    *float64
	MaxPrice    *float64
	IsADA       *bool
	IsPremium   *bool
	IsAvailable *bool
}

// Filter returns the seats matching every supplied criterion, in input
// order. Price criteria evaluate against the effective price.
func Filter(seats []Seat, criteria Criteria) []Seat {
	matched := make([]Seat, 0, len(seats))
	for _, seat := range seats {
		if !matches(seat, criteria) {
			continue
		}
		matched = append(matched, seat)
	}
	return matched
}

func matches(seat Seat, criteria Criteria) bool {
	if criteria.Status != nil && seat.Status != *criteria.Status {
		return false
	}
	if criteria.Section != nil && seat.Section != *criteria.Section {
		return false
	}
	price := seat.EffectivePrice()
	if criteria.MinPrice != nil && price < *criteria.MinPrice {
		return false
	}
	if criteria.MaxPrice != nil && price > *criteria.MaxPrice {
		return false
	}
	if criteria.IsADA != nil && seat.Features.IsADA != *criteria.IsADA {
		return false
	}
	if criteria.IsPremium != nil && seat.Features.IsPremium != *criteria.IsPremium {
		return false
	}
	if criteria.IsAvailable != nil && seat.Availability.IsAvailable != *criteria.IsAvailable {
		return false
	}
	return true
}
