package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/venuelane/seating-backend/pkg/config"
	"github.com/venuelane/seating-backend/pkg/enums"
	pkgerrors "github.com/venuelane/seating-backend/pkg/errors"
	"github.com/venuelane/seating-backend/pkg/logger"
	"github.com/venuelane/seating-backend/pkg/seats"
)

// Facade composes the three adapters so callers can convert between any
// pair of formats, and exposes the aggregate operations expressed purely
// in terms of canonical seats. No format pair has direct conversion logic;
// everything routes through the canonical model.
type Facade struct {
	storage   StorageAdapter
	authoring AuthoringAdapter
	ui        UIAdapter

	log               *logger.Logger
	adjacencyDistance float64
	holdTTL           time.Duration
}

// FacadeOptions tunes the facade. Zero values select sensible defaults.
type FacadeOptions struct {
	Logger                   *logger.Logger
	AdjacencyDistancePercent float64
	DefaultCategoryColor     string

	// DefaultHoldTTL backfills the expiry of held/reserved status updates
	// that arrive without one. Zero leaves such updates open-ended.
	DefaultHoldTTL time.Duration
}

// OptionsFromConfig maps the seating section of the environment config onto
// facade options.
func OptionsFromConfig(cfg config.SeatingConfig, log *logger.Logger) FacadeOptions {
	return FacadeOptions{
		Logger:                   log,
		AdjacencyDistancePercent: cfg.AdjacencyDistancePercent,
		DefaultCategoryColor:     cfg.DefaultCategoryColor,
		DefaultHoldTTL:           cfg.DefaultHoldTTL,
	}
}

func NewFacade(opts FacadeOptions) *Facade {
	distance := opts.AdjacencyDistancePercent
	if distance <= 0 {
		distance = seats.DefaultAdjacencyDistancePercent
	}
	return &Facade{
		authoring:         NewAuthoringAdapter(opts.DefaultCategoryColor),
		log:               opts.Logger,
		adjacencyDistance: distance,
		holdTTL:           opts.DefaultHoldTTL,
	}
}

// Storage exposes the composed storage adapter.
func (f *Facade) Storage() StorageAdapter { return f.storage }

// Authoring exposes the composed authoring adapter.
func (f *Facade) Authoring() AuthoringAdapter { return f.authoring }

// UI exposes the composed UI adapter.
func (f *Facade) UI() UIAdapter { return f.ui }

// StorageToUI converts persisted records into the interactive shape.
func (f *Facade) StorageToUI(records []StorageRecord) []UISeat {
	return f.ui.FromDomainSlice(f.storage.ToDomainSlice(records))
}

// StorageToAuthoring converts persisted records into authoring intent.
func (f *Facade) StorageToAuthoring(records []StorageRecord) []AuthoringSeat {
	return f.authoring.FromDomainSlice(f.storage.ToDomainSlice(records))
}

// AuthoringToStorage converts freshly authored seats into the persisted
// shape.
func (f *Facade) AuthoringToStorage(records []AuthoringSeat) []StorageRecord {
	return f.storage.FromDomainSlice(f.authoring.ToDomainSlice(records))
}

// AuthoringToUI converts authored seats straight into the interactive
// shape, for layout preview.
func (f *Facade) AuthoringToUI(records []AuthoringSeat) []UISeat {
	return f.ui.FromDomainSlice(f.authoring.ToDomainSlice(records))
}

// UIToStorage converts interactive seats into the persisted shape.
func (f *Facade) UIToStorage(records []UISeat) []StorageRecord {
	return f.storage.FromDomainSlice(f.ui.ToDomainSlice(records))
}

// UIToAuthoring converts interactive seats back into authoring intent.
func (f *Facade) UIToAuthoring(records []UISeat) []AuthoringSeat {
	return f.authoring.FromDomainSlice(f.ui.ToDomainSlice(records))
}

// ValidateAndClean converts records of the tagged source format to the UI
// shape, dropping entries that fail validation. Unrecognized formats and
// mismatched payload types yield an empty slice; callers on this path pass
// already-sanitized data and want graceful degradation, not a panic.
func (f *Facade) ValidateAndClean(ctx context.Context, records any, source enums.SeatFormat) []UISeat {
	var cleaned []UISeat
	var total int

	switch source {
	case enums.SeatFormatStorage:
		typed, ok := records.([]StorageRecord)
		if !ok {
			f.warnPayloadMismatch(ctx, source, records)
			return []UISeat{}
		}
		total = len(typed)
		cleaned = f.StorageToUI(typed)
	case enums.SeatFormatAuthoring:
		typed, ok := records.([]AuthoringSeat)
		if !ok {
			f.warnPayloadMismatch(ctx, source, records)
			return []UISeat{}
		}
		total = len(typed)
		cleaned = f.AuthoringToUI(typed)
	case enums.SeatFormatUI:
		typed, ok := records.([]UISeat)
		if !ok {
			f.warnPayloadMismatch(ctx, source, records)
			return []UISeat{}
		}
		total = len(typed)
		cleaned = f.ui.FromDomainSlice(f.ui.ToDomainSlice(typed))
	default:
		if f.log != nil {
			err := pkgerrors.New(pkgerrors.CodeUnknownFormat, fmt.Sprintf("seat format %q has no adapter", source.String()))
			ctx = f.log.WithSeatFormat(ctx, source.String())
			ctx = f.log.WithField(ctx, "error", pkgerrors.Dump(err))
			f.log.Warn(ctx, "unknown seat format, returning empty set")
		}
		return []UISeat{}
	}

	if dropped := total - len(cleaned); dropped > 0 && f.log != nil {
		f.log.Debug(f.log.WithSeatFormat(ctx, source.String()), fmt.Sprintf("dropped %d invalid seat record(s)", dropped))
	}
	return cleaned
}

// FindSeats filters UI seats by the supplied criteria.
func (f *Facade) FindSeats(records []UISeat, criteria seats.Criteria) []UISeat {
	return f.ui.FromDomainSlice(seats.Filter(f.ui.ToDomainSlice(records), criteria))
}

// TotalPrice sums the quoted price of the seats whose id is in selectedIDs.
func (f *Facade) TotalPrice(records []UISeat, selectedIDs []string, mods *seats.PriceModifiers) float64 {
	return seats.TotalPrice(f.ui.ToDomainSlice(records), selectedIDs, mods)
}

// StatusUpdate is one entry of a batch status change from inventory.
type StatusUpdate struct {
	SeatID     string           `json:"seat_id"`
	Status     enums.SeatStatus `json:"status"`
	HoldExpiry *time.Time       `json:"hold_expiry,omitempty"`
}

// ApplyStatusUpdates replaces each matched seat's status and hold expiry,
// returning a new slice. Seats with no matching update pass through
// unchanged; update ids that match no seat are ignored. Held/reserved
// updates that carry no expiry get now plus the configured default TTL.
func (f *Facade) ApplyStatusUpdates(records []UISeat, updates []StatusUpdate, now time.Time) []UISeat {
	byID := make(map[string]StatusUpdate, len(updates))
	for _, update := range updates {
		byID[update.SeatID] = update
	}

	updated := make([]UISeat, len(records))
	for i, record := range records {
		update, ok := byID[record.ID]
		if !ok {
			updated[i] = record
			continue
		}
		expiry := update.HoldExpiry
		if expiry == nil && update.Status.Holdable() && f.holdTTL > 0 {
			deadline := now.Add(f.holdTTL)
			expiry = &deadline
		}
		updated[i] = f.ui.UpdateSeatStatus(record, update.Status, expiry)
	}
	return updated
}

// NormalizeExpiredHolds releases seats whose hold lapsed before now,
// returning a new slice. Inventory remains the source of truth; this only
// tidies a local snapshot between refreshes.
func (f *Facade) NormalizeExpiredHolds(records []UISeat, now time.Time) []UISeat {
	updated := make([]UISeat, len(records))
	for i, record := range records {
		if record.Status.Holdable() && record.HoldExpiry != nil && !record.HoldExpiry.After(now) {
			updated[i] = f.ui.UpdateSeatStatus(record, enums.SeatStatusAvailable, nil)
		} else {
			updated[i] = record
		}
	}
	return updated
}

// CheckHold verifies the identified seat still carries an active hold at
// now, for confirming a selection made earlier against a refreshed
// snapshot. The returned coded error tells the caller whether a retry can
// succeed.
func (f *Facade) CheckHold(records []UISeat, seatID string, now time.Time) error {
	for _, record := range records {
		if record.ID != seatID {
			continue
		}
		if !record.Status.Holdable() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("seat %s holds no reservation, status is %s", seatID, record.Status))
		}
		if record.HoldExpiry != nil && !record.HoldExpiry.After(now) {
			return pkgerrors.New(pkgerrors.CodeStaleHold, fmt.Sprintf("hold on seat %s lapsed", seatID))
		}
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("seat %s not in collection", seatID))
}

// Statistics summarizes the UI seat collection.
func (f *Facade) Statistics(records []UISeat) seats.Stats {
	return seats.Statistics(f.ui.ToDomainSlice(records))
}

// FindAdjacent runs the group search over UI seats.
func (f *Facade) FindAdjacent(records []UISeat, groupSize int, prefs *seats.GroupPreferences) [][]UISeat {
	return f.ui.FindAvailableAdjacentSeats(records, groupSize, prefs)
}

// AreAdjacent applies the adjacency rule with the facade's configured
// coordinate-distance threshold.
func (f *Facade) AreAdjacent(a, b UISeat) bool {
	return seats.AreAdjacent(f.ui.ToDomain(a), f.ui.ToDomain(b), f.adjacencyDistance)
}

func (f *Facade) warnPayloadMismatch(ctx context.Context, source enums.SeatFormat, records any) {
	if f.log == nil {
		return
	}
	err := pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("payload type %T does not match declared format", records))
	ctx = f.log.WithSeatFormat(ctx, source.String())
	ctx = f.log.WithField(ctx, "error", pkgerrors.Dump(err))
	f.log.Warn(ctx, "payload type does not match declared format")
}
