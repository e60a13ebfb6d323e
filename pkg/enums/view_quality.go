package enums

import "fmt"

// ViewQuality grades a seat's sightline toward the stage.
type ViewQuality string

const (
	ViewQualityExcellent  ViewQuality = "excellent"
	ViewQualityGood       ViewQuality = "good"
	ViewQualityLimited    ViewQuality = "limited"
	ViewQualityObstructed ViewQuality = "obstructed"
)

var validViewQualities = []ViewQuality{
	ViewQualityExcellent,
	ViewQualityGood,
	ViewQualityLimited,
	ViewQualityObstructed,
}

// String implements fmt.Stringer.
func (v ViewQuality) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ViewQuality.
func (v ViewQuality) IsValid() bool {
	for _, candidate := range validViewQualities {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseViewQuality converts raw input into a ViewQuality.
func ParseViewQuality(value string) (ViewQuality, error) {
	for _, candidate := range validViewQualities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid view quality %q", value)
}
