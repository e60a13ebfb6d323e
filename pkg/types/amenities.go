package types

import (
	"database/sql/driver"

	"github.com/lib/pq"
)

// Amenities lists seat perks (cup holder, power outlet, in-seat service).
// Stored as a Postgres text[] column.
type Amenities []string

// Value implements driver.Valuer via pq's array encoding.
func (a Amenities) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return pq.StringArray(a).Value()
}

// Scan implements sql.Scanner for text[] columns.
func (a *Amenities) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var raw pq.StringArray
	if err := raw.Scan(value); err != nil {
		return err
	}
	*a = Amenities(raw)
	return nil
}

// Clone copies the list so callers can mutate without aliasing.
func (a Amenities) Clone() Amenities {
	if a == nil {
		return nil
	}
	out := make(Amenities, len(a))
	copy(out, a)
	return out
}
