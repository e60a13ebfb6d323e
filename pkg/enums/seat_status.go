package enums

import "fmt"

// SeatStatus tracks where a seat sits in the sales lifecycle.
type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusSelected  SeatStatus = "selected"
	SeatStatusSold      SeatStatus = "sold"
	SeatStatusReserved  SeatStatus = "reserved"
	SeatStatusHeld      SeatStatus = "held"
)

var validSeatStatuses = []SeatStatus{
	SeatStatusAvailable,
	SeatStatusSelected,
	SeatStatusSold,
	SeatStatusReserved,
	SeatStatusHeld,
}

// String implements fmt.Stringer.
func (s SeatStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SeatStatus.
func (s SeatStatus) IsValid() bool {
	for _, candidate := range validSeatStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// Holdable reports whether a hold expiry is meaningful for this status.
func (s SeatStatus) Holdable() bool {
	return s == SeatStatusHeld || s == SeatStatusReserved
}

// ParseSeatStatus converts raw input into a SeatStatus.
func ParseSeatStatus(value string) (SeatStatus, error) {
	for _, candidate := range validSeatStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid seat status %q", value)
}
