package seats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venuelane/seating-backend/pkg/enums"
	"github.com/venuelane/seating-backend/pkg/types"
)

func statSeat(id string, price float64, status enums.SeatStatus) Seat {
	return New(id, id, types.Coordinates{}, Pricing{BasePrice: price}, "1", WithStatus(status))
}

func TestStatisticsRevenueAndAverage(t *testing.T) {
	collection := []Seat{
		statSeat("s1", 20, enums.SeatStatusSold),
		statSeat("s2", 25, enums.SeatStatusSold),
		statSeat("s3", 30, enums.SeatStatusSold),
		statSeat("a1", 10, enums.SeatStatusAvailable),
		statSeat("a2", 15, enums.SeatStatusAvailable),
		statSeat("a3", 35, enums.SeatStatusAvailable),
		statSeat("h1", 40, enums.SeatStatusHeld),
		statSeat("h2", 45, enums.SeatStatusHeld),
		statSeat("r1", 50, enums.SeatStatusReserved),
		statSeat("x1", 55, enums.SeatStatusSelected),
	}

	stats := Statistics(collection)

	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 3, stats.ByStatus[enums.SeatStatusSold])
	assert.Equal(t, 3, stats.ByStatus[enums.SeatStatusAvailable])
	assert.Equal(t, 2, stats.ByStatus[enums.SeatStatusHeld])
	assert.Equal(t, 1, stats.ByStatus[enums.SeatStatusReserved])
	assert.Equal(t, 1, stats.ByStatus[enums.SeatStatusSelected])

	// revenue counts sold seats only; average spans all ten
	assert.Equal(t, 75.0, stats.TotalRevenue)
	assert.Equal(t, 32.5, stats.AveragePrice)
}

func TestStatisticsUsesEffectivePrice(t *testing.T) {
	discounted := statSeat("s1", 100, enums.SeatStatusSold)
	override := 60.0
	discounted.Pricing.CurrentPrice = &override

	stats := Statistics([]Seat{discounted})
	assert.Equal(t, 60.0, stats.TotalRevenue)
	assert.Equal(t, 60.0, stats.AveragePrice)
}

func TestStatisticsEmpty(t *testing.T) {
	stats := Statistics(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, 0.0, stats.AveragePrice)
	assert.Empty(t, stats.ByStatus)
}

func TestCategoryColorPalette(t *testing.T) {
	assert.Equal(t, "#F59E0B", CategoryColor("vip", ""))
	assert.Equal(t, "#3B82F6", CategoryColor("standard", ""))
	assert.Equal(t, DefaultCategoryColor, CategoryColor("mystery", ""))
	assert.Equal(t, "#000000", CategoryColor("mystery", "#000000"))
}

func TestSortCategories(t *testing.T) {
	categories := []SeatCategory{
		{ID: "c", Name: "Standard", SortOrder: 2},
		{ID: "a", Name: "VIP", SortOrder: 1},
		{ID: "b", Name: "Box", SortOrder: 1},
	}
	sorted := SortCategories(categories)
	assert.Equal(t, []string{"Box", "VIP", "Standard"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name})
	// input untouched
	assert.Equal(t, "Standard", categories[0].Name)
}
