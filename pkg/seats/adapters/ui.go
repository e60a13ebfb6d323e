package adapters

import (
	"time"

	"go.uber.org/multierr"

	"github.com/venuelane/seating-backend/pkg/enums"
	pkgerrors "github.com/venuelane/seating-backend/pkg/errors"
	"github.com/venuelane/seating-backend/pkg/seats"
	"github.com/venuelane/seating-backend/pkg/types"
	"github.com/venuelane/seating-backend/pkg/validate"
)

// UISeat is the interactive shape consumed by the seat-selection surface.
// It mirrors the canonical seat closely so the renderer never reaches into
// another format.
type UISeat struct {
	ID            string            `json:"id" validate:"required"`
	Identifier    string            `json:"identifier"`
	X             float64           `json:"x" validate:"min=0,max=100"`
	Y             float64           `json:"y" validate:"min=0,max=100"`
	Rotation      *float64          `json:"rotation,omitempty"`
	SeatNumber    string            `json:"seat_number" validate:"required"`
	Row           string            `json:"row,omitempty"`
	Section       string            `json:"section,omitempty"`
	Price         float64           `json:"price" validate:"gte=0"`
	CurrentPrice  *float64          `json:"current_price,omitempty"`
	Category      string            `json:"category"`
	CategoryColor string            `json:"category_color"`
	IsADA         bool              `json:"is_ada"`
	IsPremium     bool              `json:"is_premium"`
	Status        enums.SeatStatus  `json:"status" validate:"required"`
	HoldExpiry    *time.Time        `json:"hold_expiry,omitempty"`
	SessionID     string            `json:"session_id,omitempty"`
	Amenities     types.Amenities   `json:"amenities,omitempty"`
	ViewQuality   enums.ViewQuality `json:"view_quality,omitempty"`
	TableID       string            `json:"table_id,omitempty"`
	TableType     enums.TableType   `json:"table_type,omitempty"`
	TableCapacity int               `json:"table_capacity,omitempty"`
	GroupSize     int               `json:"group_size,omitempty"`
}

// UIAdapter converts between UI records and canonical seats, and hosts the
// interactive helpers the selection surface calls.
type UIAdapter struct{}

// Validate is the acceptance predicate for raw UI records. On top of the
// shape checks it requires status to be a member of the closed enum.
func (UIAdapter) Validate(record UISeat) bool {
	if !validate.Ok(record) {
		return false
	}
	if !record.Status.IsValid() {
		return false
	}
	if record.ViewQuality != "" && !record.ViewQuality.IsValid() {
		return false
	}
	return true
}

// ToDomain converts a pre-validated UI record into a canonical seat.
func (UIAdapter) ToDomain(record UISeat) seats.Seat {
	seat := seats.Seat{
		ID:         record.ID,
		Identifier: record.Identifier,
		Coordinates: types.Coordinates{
			X:        record.X,
			Y:        record.Y,
			Rotation: record.Rotation,
		},
		Section:    record.Section,
		Row:        record.Row,
		SeatNumber: record.SeatNumber,
		Pricing: seats.Pricing{
			BasePrice:     record.Price,
			CurrentPrice:  record.CurrentPrice,
			Category:      record.Category,
			CategoryColor: record.CategoryColor,
		},
		Status: record.Status,
		Availability: seats.Availability{
			IsAvailable: seats.StatusAllowsSelection(record.Status),
			HoldExpiry:  record.HoldExpiry,
			SessionID:   record.SessionID,
		},
		Features: seats.Features{
			IsADA:       record.IsADA,
			IsPremium:   record.IsPremium,
			Amenities:   record.Amenities.Clone(),
			ViewQuality: record.ViewQuality,
		},
	}
	if record.TableID != "" {
		seat.Grouping = &seats.Grouping{
			TableID:       record.TableID,
			TableType:     record.TableType,
			TableCapacity: record.TableCapacity,
			GroupSize:     record.GroupSize,
		}
	}
	return seat
}

// FromDomain converts a canonical seat into the UI shape.
func (UIAdapter) FromDomain(seat seats.Seat) UISeat {
	record := UISeat{
		ID:            seat.ID,
		Identifier:    seat.Identifier,
		X:             seat.Coordinates.X,
		Y:             seat.Coordinates.Y,
		Rotation:      seat.Coordinates.Rotation,
		SeatNumber:    seat.SeatNumber,
		Row:           seat.Row,
		Section:       seat.Section,
		Price:         seat.Pricing.BasePrice,
		CurrentPrice:  seat.Pricing.CurrentPrice,
		Category:      seat.Pricing.Category,
		CategoryColor: seat.Pricing.CategoryColor,
		IsADA:         seat.Features.IsADA,
		IsPremium:     seat.Features.IsPremium,
		Status:        seat.Status,
		HoldExpiry:    seat.Availability.HoldExpiry,
		SessionID:     seat.Availability.SessionID,
		Amenities:     seat.Features.Amenities.Clone(),
		ViewQuality:   seat.Features.ViewQuality,
	}
	if seat.Grouping != nil {
		record.TableID = seat.Grouping.TableID
		record.TableType = seat.Grouping.TableType
		record.TableCapacity = seat.Grouping.TableCapacity
		record.GroupSize = seat.Grouping.GroupSize
	}
	return record
}

// ToDomainSlice converts a batch, silently dropping records that fail
// validation.
func (a UIAdapter) ToDomainSlice(records []UISeat) []seats.Seat {
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
func (a UIAdapter) FromDomainSlice(domainSeats []seats.Seat) []UISeat {
	records := make([]UISeat, 0, len(domainSeats))
	for _, seat := range domainSeats {
		records = append(records, a.FromDomain(seat))
	}
	return records
}

// ToDomainStrict converts a batch and aggregates per-record validation
// errors instead of dropping silently.
func (a UIAdapter) ToDomainStrict(records []UISeat) ([]seats.Seat, error) {
	converted := make([]seats.Seat, 0, len(records))
	var errs error
	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "ui record rejected").WithDetails(map[string]any{"index": i, "id": record.ID}))
			continue
		}
		if !record.Status.IsValid() {
			errs = multierr.Append(errs, pkgerrors.New(pkgerrors.CodeValidation, "ui record rejected: unknown status").WithDetails(map[string]any{"index": i, "id": record.ID, "status": record.Status}))
			continue
		}
		converted = append(converted, a.ToDomain(record))
	}
	return converted, errs
}

// UpdateSeatStatus returns a copy of the seat with its status and hold
// expiry replaced. The input is never mutated.
func (UIAdapter) UpdateSeatStatus(record UISeat, status enums.SeatStatus, holdExpiry *time.Time) UISeat {
	updated := record
	updated.Status = status
	updated.HoldExpiry = nil
	if status.Holdable() {
		updated.HoldExpiry = holdExpiry
	}
	return updated
}

// UpdateMultipleSeatStatus applies one status to every seat whose id is in
// ids, returning a new slice. Seats outside the id set pass through
// unchanged.
func (a UIAdapter) UpdateMultipleSeatStatus(records []UISeat, ids []string, status enums.SeatStatus) []UISeat {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	updated := make([]UISeat, len(records))
	for i, record := range records {
		if _, ok := idSet[record.ID]; ok {
			updated[i] = a.UpdateSeatStatus(record, status, record.HoldExpiry)
		} else {
			updated[i] = record
		}
	}
	return updated
}

// FindAvailableAdjacentSeats runs the group search over UI records. See
// seats.FindAdjacentGroups for the run semantics.
func (a UIAdapter) FindAvailableAdjacentSeats(records []UISeat, groupSize int, prefs *seats.GroupPreferences) [][]UISeat {
	domainRuns := seats.FindAdjacentGroups(a.ToDomainSlice(records), groupSize, prefs)
	runs := make([][]UISeat, 0, len(domainRuns))
	for _, run := range domainRuns {
		runs = append(runs, a.FromDomainSlice(run))
	}
	return runs
}
