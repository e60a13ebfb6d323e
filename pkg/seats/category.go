package seats

import "sort"

// SeatCategory is a pricing tier referenced by a seat's pricing.category.
// Categories live beside the layout, not inside each seat.
type SeatCategory struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	BasePrice     float64 `json:"base_price"`
	PriceModifier float64 `json:"price_modifier"`
	IsAccessible  bool    `json:"is_accessible"`
	IsPremium     bool    `json:"is_premium"`
	SortOrder     int     `json:"sort_order"`
}

// DefaultCategoryColor is used when a category name has no palette entry.
const DefaultCategoryColor = "#6B7280"

// categoryPalette maps the platform's stock category names to their chart
// colors. Authoring records only carry the name; the color is synthesized
// on conversion.
var categoryPalette = map[string]string{
	"vip":        "#F59E0B",
	"premium":    "#8B5CF6",
	"standard":   "#3B82F6",
	"economy":    "#10B981",
	"accessible": "#06B6D4",
	"box":        "#EC4899",
}

// CategoryColor looks up the chart color for a category name, falling back
// to fallback when the name is unrecognized. An empty fallback selects the
// platform default.
func CategoryColor(name, fallback string) string {
	if color, ok := categoryPalette[name]; ok {
		return color
	}
	if fallback != "" {
		return fallback
	}
	return DefaultCategoryColor
}

// SortCategories orders categories by sort order, then name for stability.
func SortCategories(categories []SeatCategory) []SeatCategory {
	sorted := make([]SeatCategory, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SortOrder != sorted[j].SortOrder {
			return sorted[i].SortOrder < sorted[j].SortOrder
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
