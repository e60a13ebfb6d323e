package seats

import (
	"github.com/shopspring/decimal"

	"github.com/venuelane/seating-backend/pkg/enums"
)

// Stats summarizes a seat collection for dashboards.
type Stats struct {
	Total        int                      `json:"total"`
	ByStatus     map[enums.SeatStatus]int `json:"by_status"`
	TotalRevenue float64                  `json:"total_revenue"`
	AveragePrice float64                  `json:"average_price"`
}

// Statistics counts seats per status, sums revenue over sold seats, and
// averages the effective price across every seat regardless of status.
func Statistics(seats []Seat) Stats {
	stats := Stats{
		Total:    len(seats),
		ByStatus: make(map[enums.SeatStatus]int, len(seats)),
	}

	revenue := decimal.Zero
	priceSum := decimal.Zero
	for _, seat := range seats {
		stats.ByStatus[seat.Status]++
		price := decimal.NewFromFloat(seat.EffectivePrice())
		priceSum = priceSum.Add(price)
		if seat.Status == enums.SeatStatusSold {
			revenue = revenue.Add(price)
		}
	}

	stats.TotalRevenue, _ = revenue.Float64()
	if stats.Total > 0 {
		stats.AveragePrice, _ = priceSum.Div(decimal.NewFromInt(int64(stats.Total))).Float64()
	}
	return stats
}
