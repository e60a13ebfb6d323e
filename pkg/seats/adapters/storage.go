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

// StorageRecord is the persisted seating-chart shape. Scalar attributes get
// dedicated columns; everything else rides in the opaque metadata map.
type StorageRecord struct {
	ID           string         `json:"id" validate:"required"`
	CategoryID   string         `json:"category_id"`
	Section      string         `json:"section,omitempty"`
	RowLabel     string         `json:"row_label,omitempty"`
	SeatNumber   string         `json:"seat_number" validate:"required"`
	Identifier   string         `json:"identifier"`
	PositionX    float64        `json:"position_x" validate:"min=0,max=100"`
	PositionY    float64        `json:"position_y" validate:"min=0,max=100"`
	Rotation     *float64       `json:"rotation,omitempty"`
	BasePrice    float64        `json:"base_price" validate:"gte=0"`
	CurrentPrice *float64       `json:"current_price,omitempty"`
	IsAvailable  bool           `json:"is_available"`
	IsAccessible bool           `json:"is_accessible"`
	IsPremium    bool           `json:"is_premium"`
	Notes        string         `json:"notes,omitempty"`
	Metadata     types.Metadata `json:"metadata,omitempty"`
}

// Well-known metadata keys owned by this adapter. Anything else in the map
// is a caller-defined custom property and passes through untouched.
const (
	metaKeyStatus        = "status"
	metaKeyHoldExpiry    = "holdExpiry"
	metaKeySessionID     = "sessionId"
	metaKeyAmenities     = "amenities"
	metaKeyViewQuality   = "viewQuality"
	metaKeyTableID       = "tableId"
	metaKeyTableType     = "tableType"
	metaKeyTableCapacity = "tableCapacity"
	metaKeyGroupSize     = "groupSize"
	metaKeyCategoryColor = "categoryColor"
)

var storageMetaKeys = []string{
	metaKeyStatus,
	metaKeyHoldExpiry,
	metaKeySessionID,
	metaKeyAmenities,
	metaKeyViewQuality,
	metaKeyTableID,
	metaKeyTableType,
	metaKeyTableCapacity,
	metaKeyGroupSize,
	metaKeyCategoryColor,
}

// StorageAdapter converts between the persisted record and the canonical
// seat. The metadata split/merge is lossless for round-trips through this
// adapter alone.
type StorageAdapter struct{}

// Validate is the acceptance predicate for raw storage records.
func (StorageAdapter) Validate(record StorageRecord) bool {
	return validate.Ok(record)
}

// ToDomain converts a pre-validated storage record into a canonical seat.
// Status is read from metadata when present and valid, otherwise derived
// from the availability boolean.
func (a StorageAdapter) ToDomain(record StorageRecord) seats.Seat {
	status := a.statusFor(record)

	seat := seats.Seat{
		ID:         record.ID,
		Identifier: record.Identifier,
		Coordinates: types.Coordinates{
			X:        record.PositionX,
			Y:        record.PositionY,
			Rotation: record.Rotation,
		},
		Section:    record.Section,
		Row:        record.RowLabel,
		SeatNumber: record.SeatNumber,
		Pricing: seats.Pricing{
			BasePrice:     record.BasePrice,
			CurrentPrice:  record.CurrentPrice,
			Category:      record.CategoryID,
			CategoryColor: metaString(record.Metadata, metaKeyCategoryColor),
		},
		Status: status,
		Availability: seats.Availability{
			IsAvailable: seats.StatusAllowsSelection(status),
			HoldExpiry:  metaTime(record.Metadata, metaKeyHoldExpiry),
			SessionID:   metaString(record.Metadata, metaKeySessionID),
		},
		Features: seats.Features{
			IsADA:       record.IsAccessible,
			IsPremium:   record.IsPremium,
			Amenities:   metaAmenities(record.Metadata),
			ViewQuality: enums.ViewQuality(metaString(record.Metadata, metaKeyViewQuality)),
		},
		Grouping: metaGrouping(record.Metadata),
	}

	custom := customProperties(record.Metadata)
	if record.Notes != "" || custom != nil {
		seat.Metadata = &seats.SeatMetadata{Notes: record.Notes, Custom: custom}
	}
	return seat
}

// FromDomain converts a canonical seat back to the storage shape, merging
// the adapter-owned fields into the metadata map without disturbing custom
// properties.
func (StorageAdapter) FromDomain(seat seats.Seat) StorageRecord {
	meta := types.Metadata{}
	if seat.Metadata != nil {
		meta = seat.Metadata.Custom.Clone()
		if meta == nil {
			meta = types.Metadata{}
		}
	}

	meta[metaKeyStatus] = seat.Status.String()
	if seat.Availability.HoldExpiry != nil {
		meta[metaKeyHoldExpiry] = seat.Availability.HoldExpiry.Format(time.RFC3339Nano)
	}
	if seat.Availability.SessionID != "" {
		meta[metaKeySessionID] = seat.Availability.SessionID
	}
	if len(seat.Features.Amenities) > 0 {
		meta[metaKeyAmenities] = []string(seat.Features.Amenities)
	}
	if seat.Features.ViewQuality != "" {
		meta[metaKeyViewQuality] = seat.Features.ViewQuality.String()
	}
	if seat.Grouping != nil {
		meta[metaKeyTableID] = seat.Grouping.TableID
		meta[metaKeyTableType] = seat.Grouping.TableType.String()
		meta[metaKeyTableCapacity] = seat.Grouping.TableCapacity
		meta[metaKeyGroupSize] = seat.Grouping.GroupSize
	}
	if seat.Pricing.CategoryColor != "" {
		meta[metaKeyCategoryColor] = seat.Pricing.CategoryColor
	}

	record := StorageRecord{
		ID:           seat.ID,
		CategoryID:   seat.Pricing.Category,
		Section:      seat.Section,
		RowLabel:     seat.Row,
		SeatNumber:   seat.SeatNumber,
		Identifier:   seat.Identifier,
		PositionX:    seat.Coordinates.X,
		PositionY:    seat.Coordinates.Y,
		Rotation:     seat.Coordinates.Rotation,
		BasePrice:    seat.Pricing.BasePrice,
		CurrentPrice: seat.Pricing.CurrentPrice,
		IsAvailable:  seat.Status == enums.SeatStatusAvailable,
		IsAccessible: seat.Features.IsADA,
		IsPremium:    seat.Features.IsPremium,
		Metadata:     meta,
	}
	if seat.Metadata != nil {
		record.Notes = seat.Metadata.Notes
	}
	return record
}

// ToDomainSlice converts a batch, silently dropping records that fail
// validation.
func (a StorageAdapter) ToDomainSlice(records []StorageRecord) []seats.Seat {
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
func (a StorageAdapter) FromDomainSlice(domainSeats []seats.Seat) []StorageRecord {
	records := make([]StorageRecord, 0, len(domainSeats))
	for _, seat := range domainSeats {
		records = append(records, a.FromDomain(seat))
	}
	return records
}

// ToDomainStrict converts a batch and aggregates a per-record error for
// every validation failure instead of dropping silently.
func (a StorageAdapter) ToDomainStrict(records []StorageRecord) ([]seats.Seat, error) {
	converted := make([]seats.Seat, 0, len(records))
	var errs error
	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "storage record rejected").WithDetails(map[string]any{"index": i, "id": record.ID}))
			continue
		}
		converted = append(converted, a.ToDomain(record))
	}
	return converted, errs
}

func (StorageAdapter) statusFor(record StorageRecord) enums.SeatStatus {
	if raw := metaString(record.Metadata, metaKeyStatus); raw != "" {
		if status, err := enums.ParseSeatStatus(raw); err == nil {
			return status
		}
	}
	if record.IsAvailable {
		return enums.SeatStatusAvailable
	}
	return enums.SeatStatusSold
}

func metaString(meta types.Metadata, key string) string {
	if meta == nil {
		return ""
	}
	if value, ok := meta[key].(string); ok {
		return value
	}
	return ""
}

func metaTime(meta types.Metadata, key string) *time.Time {
	raw := metaString(meta, key)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil
	}
	return &parsed
}

func metaInt(meta types.Metadata, key string) int {
	if meta == nil {
		return 0
	}
	switch value := meta[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	}
	return 0
}

func metaAmenities(meta types.Metadata) types.Amenities {
	if meta == nil {
		return nil
	}
	switch value := meta[metaKeyAmenities].(type) {
	case []string:
		return types.Amenities(value).Clone()
	case types.Amenities:
		return value.Clone()
	case []any:
		out := make(types.Amenities, 0, len(value))
		for _, entry := range value {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}

func metaGrouping(meta types.Metadata) *seats.Grouping {
	tableID := metaString(meta, metaKeyTableID)
	if tableID == "" {
		return nil
	}
	return &seats.Grouping{
		TableID:       tableID,
		TableType:     enums.TableType(metaString(meta, metaKeyTableType)),
		TableCapacity: metaInt(meta, metaKeyTableCapacity),
		GroupSize:     metaInt(meta, metaKeyGroupSize),
	}
}

func customProperties(meta types.Metadata) types.Metadata {
	if meta == nil {
		return nil
	}
	custom := meta.Clone()
	for _, key := range storageMetaKeys {
		delete(custom, key)
	}
	if len(custom) == 0 {
		return nil
	}
	return custom
}
