package adapters

import (
	"fmt"

	"go.uber.org/multierr"

	pkgerrors "github.com/venuelane/seating-backend/pkg/errors"
	"github.com/venuelane/seating-backend/pkg/seats"
	"github.com/venuelane/seating-backend/pkg/types"
	"github.com/venuelane/seating-backend/pkg/validate"
)

// AuthoringSeat is the minimal record produced by the venue-layout editor.
// It carries placement and pricing intent only; sale state does not exist
// at authoring time.
type AuthoringSeat struct {
	ID         string  `json:"id" validate:"required"`
	X          float64 `json:"x" validate:"min=0,max=100"`
	Y          float64 `json:"y" validate:"min=0,max=100"`
	SeatNumber string  `json:"seat_number" validate:"required"`
	Category   string  `json:"category"`
	IsADA      bool    `json:"is_ada"`
	Price      float64 `json:"price" validate:"gte=0"`
}

// AuthoringAdapter converts between authoring records and canonical seats.
type AuthoringAdapter struct {
	defaultColor string
}

// NewAuthoringAdapter builds the adapter with the palette fallback color
// used when a category name is unrecognized.
func NewAuthoringAdapter(defaultColor string) AuthoringAdapter {
	if defaultColor == "" {
		defaultColor = seats.DefaultCategoryColor
	}
	return AuthoringAdapter{defaultColor: defaultColor}
}

// Validate is the acceptance predicate for raw authoring records.
func (AuthoringAdapter) Validate(record AuthoringSeat) bool {
	return validate.Ok(record)
}

// ToDomain converts an authoring record. The result is always available;
// the category color comes from the platform palette.
func (a AuthoringAdapter) ToDomain(record AuthoringSeat) seats.Seat {
	return seats.New(
		record.ID,
		fmt.Sprintf("Seat %s", record.SeatNumber),
		types.Coordinates{X: record.X, Y: record.Y},
		seats.Pricing{
			BasePrice:     record.Price,
			Category:      record.Category,
			CategoryColor: seats.CategoryColor(record.Category, a.defaultColor),
		},
		record.SeatNumber,
		seats.WithFeatures(seats.Features{IsADA: record.IsADA}),
	)
}

// FromDomain strips a canonical seat down to authoring intent.
func (AuthoringAdapter) FromDomain(seat seats.Seat) AuthoringSeat {
	return AuthoringSeat{
		ID:         seat.ID,
		X:          seat.Coordinates.X,
		Y:          seat.Coordinates.Y,
		SeatNumber: seat.SeatNumber,
		Category:   seat.Pricing.Category,
		IsADA:      seat.Features.IsADA,
		Price:      seat.Pricing.BasePrice,
	}
}

// ToDomainSlice converts a batch, silently dropping records that fail
// validation.
func (a AuthoringAdapter) ToDomainSlice(records []AuthoringSeat) []seats.Seat {
	converted := make([]seats.Seat, 0, len(records))
	for _, record := range records {
		if !a.Validate(record) {
			continue
		}
		converted = append(converted, a.ToDomain(record))
	}
	return converted
}

// FromDomainSlice converts a batch of canonical seats.
func (a AuthoringAdapter) FromDomainSlice(domainSeats []seats.Seat) []AuthoringSeat {
	records := make([]AuthoringSeat, 0, len(domainSeats))
	for _, seat := range domainSeats {
		records = append(records, a.FromDomain(seat))
	}
	return records
}

// ToDomainStrict converts a batch and aggregates per-record validation
// errors instead of dropping silently.
func (a AuthoringAdapter) ToDomainStrict(records []AuthoringSeat) ([]seats.Seat, error) {
	converted := make([]seats.Seat, 0, len(records))
	var errs error
	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "authoring record rejected").WithDetails(map[string]any{"index": i, "id": record.ID}))
			continue
		}
		converted = append(converted, a.ToDomain(record))
	}
	return converted, errs
}
