package enums

import "fmt"

// SeatFormat identifies which external record shape a seat payload uses.
type SeatFormat string

const (
	SeatFormatStorage   SeatFormat = "storage"
	SeatFormatAuthoring SeatFormat = "authoring"
	SeatFormatUI        SeatFormat = "ui"
)

var validSeatFormats = []SeatFormat{
	SeatFormatStorage,
	SeatFormatAuthoring,
	SeatFormatUI,
}

// String implements fmt.Stringer.
func (f SeatFormat) String() string {
	return string(f)
}

// IsValid reports whether the value is a known SeatFormat.
func (f SeatFormat) IsValid() bool {
	for _, candidate := range validSeatFormats {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseSeatFormat converts raw input into a SeatFormat.
func ParseSeatFormat(value string) (SeatFormat, error) {
	for _, candidate := range validSeatFormats {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid seat format %q", value)
}
