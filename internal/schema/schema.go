// Package schema defines the request payloads accepted by the API and the
// validation rules that normalize them before they reach storage.
package schema

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// FieldErrors maps field names to a human-readable problem. It is returned by
// Validate methods and rendered as the body of a 400 response.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "invalid payload"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// timestampFormats are the layouts clients actually send. RFC 3339 comes from
// the SPA; the short forms come from date and datetime-local inputs.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateValue is a tri-state timestamp field. JSON gives us three distinct
// shapes to keep apart: the key missing entirely, an explicit null (or empty
// string), and a value that may or may not parse. Which of those are errors
// depends on the field, so the decision is left to the Validate methods.
type DateValue struct {
	Present bool
	Null    bool
	Valid   bool
	Time    time.Time
}

func (d *DateValue) UnmarshalJSON(b []byte) error {
	d.Present = true
	if string(b) == "null" {
		d.Null = true
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Wrong JSON type (number, object). Not a decode failure: the
		// field-level rules decide whether to coerce or reject.
		return nil
	}
	if s == "" {
		d.Null = true
		return nil
	}
	if t, ok := parseTimestamp(s); ok {
		d.Valid = true
		d.Time = t
	}
	return nil
}

// timePtr returns the parsed time, or nil when the value was null, empty or
// unparsable. Lenient fields (task dueDate) coerce through this.
func (d DateValue) timePtr() *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

// Optional is a tri-state scalar for partial updates: the key may be missing,
// an explicit null, or a value. Validate methods decide per field whether null
// clears the column or is rejected. DateValue covers the same shapes for
// timestamps.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Present = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// ptr returns the wrapped value as a pointer, for Changes structs where nil
// means not supplied.
func (o Optional[T]) ptr() *T {
	v := o.Value
	return &v
}
