package seats

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/venuelane/seating-backend/pkg/enums"
	"github.com/venuelane/seating-backend/pkg/types"
)

// Seat is the canonical representation every external seat shape converts
// to and from. Adapters own the translation; business rules only ever see
// this type.
type Seat struct {
	ID          string            `json:"id"`
	Identifier  string            `json:"identifier"`
	Coordinates types.Coordinates `json:"coordinates"`
	Section     string            `json:"section,omitempty"`
	Row         string            `json:"row,omitempty"`
	SeatNumber  string            `json:"seat_number"`

	Pricing      Pricing          `json:"pricing"`
	Status       enums.SeatStatus `json:"status"`
	Availability Availability     `json:"availability"`
	Features     Features         `json:"features"`
	Grouping     *Grouping        `json:"grouping,omitempty"`
	Metadata     *SeatMetadata    `json:"metadata,omitempty"`
}

type Pricing struct {
	BasePrice     float64  `json:"base_price"`
	CurrentPrice  *float64 `json:"current_price,omitempty"`
	Category      string   `json:"category"`
	CategoryColor string   `json:"category_color"`
}

type Availability struct {
	IsAvailable bool       `json:"is_available"`
	HoldExpiry  *time.Time `json:"hold_expiry,omitempty"`
	SessionID   string     `json:"session_id,omitempty"`
}

type Features struct {
	IsADA       bool              `json:"is_ada"`
	IsPremium   bool              `json:"is_premium"`
	Amenities   types.Amenities   `json:"amenities,omitempty"`
	ViewQuality enums.ViewQuality `json:"view_quality,omitempty"`
}

// Grouping is set only for table-based events.
type Grouping struct {
	TableID       string          `json:"table_id"`
	TableType     enums.TableType `json:"table_type"`
	TableCapacity int             `json:"table_capacity"`
	GroupSize     int             `json:"group_size"`
}

// SeatMetadata carries operator notes plus caller-defined custom properties.
type SeatMetadata struct {
	Notes  string         `json:"notes,omitempty"`
	Custom types.Metadata `json:"custom,omitempty"`
}

// Option overrides a default on a newly built seat.
type Option func(*Seat)

func WithSection(section string) Option {
	return func(s *Seat) { s.Section = section }
}

func WithRow(row string) Option {
	return func(s *Seat) { s.Row = row }
}

func WithStatus(status enums.SeatStatus) Option {
	return func(s *Seat) {
		s.Status = status
		s.Availability.IsAvailable = StatusAllowsSelection(status)
	}
}

func WithFeatures(features Features) Option {
	return func(s *Seat) { s.Features = features }
}

func WithGrouping(grouping Grouping) Option {
	return func(s *Seat) { s.Grouping = &grouping }
}

func WithMetadata(metadata SeatMetadata) Option {
	return func(s *Seat) { s.Metadata = &metadata }
}

func WithHold(expiry time.Time, sessionID string) Option {
	return func(s *Seat) {
		s.Availability.HoldExpiry = &expiry
		s.Availability.SessionID = sessionID
	}
}

// New builds a canonical seat. Defaults match a freshly placed, sellable
// seat: available, no features, no grouping. Callers supply well-formed
// inputs; shape validation happens at the adapter boundary.
func New(id, identifier string, coordinates types.Coordinates, pricing Pricing, seatNumber string, opts ...Option) Seat {
	seat := Seat{
		ID:          id,
		Identifier:  identifier,
		Coordinates: coordinates,
		SeatNumber:  seatNumber,
		Pricing:     pricing,
		Status:      enums.SeatStatusAvailable,
		Availability: Availability{
			IsAvailable: true,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&seat)
		}
	}
	return seat
}

// NewID mints a layout-unique seat id.
func NewID() string {
	return uuid.NewString()
}

// StatusAllowsSelection reports whether the availability flag may be true
// for the given status. Keeps status and the derived boolean from
// contradicting each other.
func StatusAllowsSelection(status enums.SeatStatus) bool {
	return status == enums.SeatStatusAvailable
}

// ParseSeatNumber extracts the numeric value of a seat label. Labels like
// "12" parse directly; prefixed labels like "A12" fall back to their
// trailing digits.
func ParseSeatNumber(label string) (int, bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n, true
	}
	start := len(trimmed)
	for start > 0 && trimmed[start-1] >= '0' && trimmed[start-1] <= '9' {
		start--
	}
	if start == len(trimmed) {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed[start:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// HoldRemaining returns how long the seat's hold is still good for, zero
// when there is no hold or it already lapsed.
func (s Seat) HoldRemaining(now time.Time) time.Duration {
	if s.Availability.HoldExpiry == nil || !s.Status.Holdable() {
		return 0
	}
	remaining := s.Availability.HoldExpiry.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// EffectivePrice is the current override when set, otherwise the base price.
func (s Seat) EffectivePrice() float64 {
	if s.Pricing.CurrentPrice != nil {
		return *s.Pricing.CurrentPrice
	}
	return s.Pricing.BasePrice
}
