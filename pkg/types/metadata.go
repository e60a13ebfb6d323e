package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata is the opaque extension column carried by persisted seating-chart
// records. It is stored as JSONB; only the storage adapter reads or writes
// well-known keys inside it.
type Metadata map[string]any

// Value implements driver.Valuer so the map can be written as JSONB.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("metadata: marshal: %w", err)
	}
	return raw, nil
}

// Scan implements sql.Scanner for JSONB columns.
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return m.fromJSON(v)
	case string:
		return m.fromJSON([]byte(v))
	default:
		return fmt.Errorf("metadata: unsupported scan type %T", value)
	}
}

func (m *Metadata) fromJSON(raw []byte) error {
	if len(raw) == 0 {
		*m = Metadata{}
		return nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("metadata: unmarshal: %w", err)
	}
	*m = decoded
	return nil
}

// Clone deep-copies one level of the map. Nested values are shared; the
// adapters only ever write scalar or freshly built values into it.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
