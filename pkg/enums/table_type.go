package enums

import "fmt"

// TableType classifies table-based seating groups.
type TableType string

const (
	TableTypeRound     TableType = "round"
	TableTypeRectangle TableType = "rectangle"
	TableTypeBar       TableType = "bar"
	TableTypeBooth     TableType = "booth"
)

var validTableTypes = []TableType{
	TableTypeRound,
	TableTypeRectangle,
	TableTypeBar,
	TableTypeBooth,
}

// String implements fmt.Stringer.
func (t TableType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TableType.
func (t TableType) IsValid() bool {
	for _, candidate := range validTableTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTableType converts raw input into a TableType.
func ParseTableType(value string) (TableType, error) {
	for _, candidate := range validTableTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid table type %q", value)
}
