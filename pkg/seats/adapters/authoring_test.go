package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/venuelane/seating-backend/pkg/enums"
	"github.com/venuelane/seating-backend/pkg/seats"
	"github.com/venuelane/seating-backend/pkg/types"
)

func validAuthoringSeat() AuthoringSeat {
	return AuthoringSeat{
		ID:         "auth-1",
		X:          25,
		Y:          75,
		SeatNumber: "14",
		Category:   "vip",
		IsADA:      true,
		Price:      150,
	}
}

func TestAuthoringToDomainAlwaysAvailable(t *testing.T) {
	adapter := NewAuthoringAdapter("")
	seat := adapter.ToDomain(validAuthoringSeat())

	assert.Equal(t, enums.SeatStatusAvailable, seat.Status)
	assert.True(t, seat.Availability.IsAvailable)
	assert.Nil(t, seat.Availability.HoldExpiry)
	assert.Equal(t, "Seat 14", seat.Identifier)
	assert.Equal(t, 150.0, seat.Pricing.BasePrice)
	assert.True(t, seat.Features.IsADA)
}

func TestAuthoringCategoryColorSynthesis(t *testing.T) {
	adapter := NewAuthoringAdapter("")
	assert.Equal(t, "#F59E0B", adapter.ToDomain(validAuthoringSeat()).Pricing.CategoryColor)

	unknown := validAuthoringSeat()
	unknown.Category = "garden-terrace"
	assert.Equal(t, seats.DefaultCategoryColor, adapter.ToDomain(unknown).Pricing.CategoryColor)

	custom := NewAuthoringAdapter("#101010")
	assert.Equal(t, "#101010", custom.ToDomain(unknown).Pricing.CategoryColor)
}

func TestAuthoringRoundTripPreservesCoreFields(t *testing.T) {
	adapter := NewAuthoringAdapter("")
	original := seats.New("auth-2", "Seat 3", types.Coordinates{X: 5.5, Y: 9.25},
		seats.Pricing{BasePrice: 42, Category: "economy", CategoryColor: "#10B981"}, "3",
		seats.WithFeatures(seats.Features{IsADA: true}))

	record := adapter.FromDomain(original)
	require.True(t, adapter.Validate(record))
	back := adapter.ToDomain(record)

	assert.Equal(t, original.ID, back.ID)
	assert.Equal(t, original.Coordinates, back.Coordinates)
	assert.Equal(t, original.SeatNumber, back.SeatNumber)
	assert.Equal(t, original.Pricing.BasePrice, back.Pricing.BasePrice)
	assert.Equal(t, original.Features.IsADA, back.Features.IsADA)
	assert.Equal(t, original.Features.IsPremium, back.Features.IsPremium)
}

func TestAuthoringValidate(t *testing.T) {
	adapter := NewAuthoringAdapter("")
	assert.True(t, adapter.Validate(validAuthoringSeat()))

	missingID := validAuthoringSeat()
	missingID.ID = ""
	assert.False(t, adapter.Validate(missingID))

	offImage := validAuthoringSeat()
	offImage.Y = 100.01
	assert.False(t, adapter.Validate(offImage))
}

func TestAuthoringSliceAndStrict(t *testing.T) {
	adapter := NewAuthoringAdapter("")
	bad := validAuthoringSeat()
	bad.X = -1

	converted := adapter.ToDomainSlice([]AuthoringSeat{validAuthoringSeat(), bad})
	assert.Len(t, converted, 1)

	strict, err := adapter.ToDomainStrict([]AuthoringSeat{validAuthoringSeat(), bad})
	assert.Len(t, strict, 1)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
}
