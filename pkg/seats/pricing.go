package seats

import "github.com/shopspring/decimal"

// PriceModifiers adjusts a seat's effective price at quote time.
type PriceModifiers struct {
	// DynamicRate multiplies the price (1.25 = 25% surge).
	DynamicRate *float64
	// Discounts are flat amounts subtracted after the dynamic rate.
	Discounts []float64
}

// CalculatePrice quotes a single seat. The result never goes below zero,
// no matter how large the discounts are.
func CalculatePrice(seat Seat, mods *PriceModifiers) float64 {
	price := decimal.NewFromFloat(seat.EffectivePrice())
	if mods != nil {
		if mods.DynamicRate != nil {
			price = price.Mul(decimal.NewFromFloat(*mods.DynamicRate))
		}
		for _, discount := range mods.Discounts {
			price = price.Sub(decimal.NewFromFloat(discount))
		}
	}
	if price.IsNegative() {
		return 0
	}
	result, _ := price.Float64()
	return result
}

// TotalPrice sums CalculatePrice over the seats whose id appears in
// selectedIDs. Unknown ids are ignored.
func TotalPrice(seats []Seat, selectedIDs []string, mods *PriceModifiers) float64 {
	selected := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = struct{}{}
	}

	total := decimal.Zero
	for _, seat := range seats {
		if _, ok := selected[seat.ID]; !ok {
			continue
		}
		total = total.Add(decimal.NewFromFloat(CalculatePrice(seat, mods)))
	}
	result, _ := total.Float64()
	return result
}
