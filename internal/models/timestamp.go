package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// timestampLayout is ISO-8601 without a zone offset. Columns are
// `timestamp` (no timezone) and values are UTC by convention, so the
// offset never appears on the wire either.
const timestampLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a naive UTC timestamp used for both the database column and
// the JSON wire format.
type Timestamp struct {
	time.Time
}

// Now returns the current UTC instant. All row timestamps are produced by
// the caller, never by the database.
func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(timestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}

func (t *Timestamp) Scan(src any) error {
	v, ok := src.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
	t.Time = v
	return nil
}

func (Timestamp) GormDataType() string {
	return "timestamp"
}
