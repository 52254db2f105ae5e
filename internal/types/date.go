package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the accepted wire shapes of a date, most specific first.
// Month pickers send "2006-01"; stored records come back as RFC 3339.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006-01",
}

// Date is a calendar date. A nil or zero Date is absent.
type Date struct {
	time.Time
}

// NewDate returns a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) *Date {
	return &Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses any accepted date shape. A blank string yields nil.
func ParseDate(s string) (*Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &Date{Time: t.UTC()}, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}

// Present reports whether the date is set.
func (d *Date) Present() bool {
	return d != nil && !d.IsZero()
}

// Clone returns an independent copy of the date.
func (d *Date) Clone() *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

// MarshalJSON implements json.Marshaler
func (d *Date) MarshalJSON() ([]byte, error) {
	if !d.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON implements json.Unmarshaler. Malformed dates decode as absent
// rather than failing the whole document.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil || parsed == nil {
		d.Time = time.Time{}
		return nil
	}
	d.Time = parsed.Time
	return nil
}
