package seats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/venuelane/seating-backend/pkg/enums"
	"github.com/venuelane/seating-backend/pkg/types"
)

func TestNewDefaults(t *testing.T) {
	seat := New("s1", "Orchestra A1", types.Coordinates{X: 10, Y: 20}, Pricing{BasePrice: 50, Category: "standard"}, "1")

	assert.Equal(t, enums.SeatStatusAvailable, seat.Status)
	assert.True(t, seat.Availability.IsAvailable)
	assert.False(t, seat.Features.IsADA)
	assert.False(t, seat.Features.IsPremium)
	assert.Nil(t, seat.Grouping)
	assert.Nil(t, seat.Metadata)
}

func TestNewWithOverrides(t *testing.T) {
	expiry := time.Now().Add(5 * time.Minute)
	seat := New("s2", "Balcony B4", types.Coordinates{X: 30, Y: 40}, Pricing{BasePrice: 80}, "4",
		WithSection("balcony"),
		WithRow("B"),
		WithStatus(enums.SeatStatusHeld),
		WithHold(expiry, "sess-9"),
		WithFeatures(Features{IsADA: true, IsPremium: true}),
		WithGrouping(Grouping{TableID: "t1", TableType: enums.TableTypeRound, TableCapacity: 8, GroupSize: 4}),
	)

	assert.Equal(t, "balcony", seat.Section)
	assert.Equal(t, "B", seat.Row)
	assert.Equal(t, enums.SeatStatusHeld, seat.Status)
	// held seats are not selectable
	assert.False(t, seat.Availability.IsAvailable)
	assert.Equal(t, "sess-9", seat.Availability.SessionID)
	assert.True(t, seat.Features.IsADA)
	if assert.NotNil(t, seat.Grouping) {
		assert.Equal(t, enums.TableTypeRound, seat.Grouping.TableType)
	}
}

func TestParseSeatNumber(t *testing.T) {
	tests := []struct {
		label string
		want  int
		ok    bool
	}{
		{"12", 12, true},
		{" 7 ", 7, true},
		{"A12", 12, true},
		{"AA3", 3, true},
		{"", 0, false},
		{"front", 0, false},
		{"12A", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSeatNumber(tt.label)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseSeatNumber(%q) = (%d, %v), want (%d, %v)", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}

func TestHoldRemaining(t *testing.T) {
	now := time.Now()
	expiry := now.Add(3 * time.Minute)

	held := New("s3", "C3", types.Coordinates{X: 1, Y: 1}, Pricing{BasePrice: 10}, "3",
		WithStatus(enums.SeatStatusHeld), WithHold(expiry, "sess"))
	assert.Equal(t, 3*time.Minute, held.HoldRemaining(now))
	assert.Equal(t, time.Duration(0), held.HoldRemaining(expiry.Add(time.Second)))

	// expiry on a non-holdable status is meaningless
	sold := held
	sold.Status = enums.SeatStatusSold
	assert.Equal(t, time.Duration(0), sold.HoldRemaining(now))
}

func TestEffectivePrice(t *testing.T) {
	seat := New("s4", "D4", types.Coordinates{}, Pricing{BasePrice: 100}, "4")
	assert.Equal(t, 100.0, seat.EffectivePrice())

	override := 75.0
	seat.Pricing.CurrentPrice = &override
	assert.Equal(t, 75.0, seat.EffectivePrice())
}

func TestNewIDIsUnique(t *testing.T) {
	if NewID() == NewID() {
		t.Fatal("expected distinct ids")
	}
}
