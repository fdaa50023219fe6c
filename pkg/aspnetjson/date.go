// Package aspnetjson reads and writes the "/Date(ms)/" timestamps used by
// ASP.NET JSON serializers.
package aspnetjson

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var datePattern = regexp.MustCompile(`^/Date\((-?\d+)([+-]\d{4})?\)/$`)

// ParseDate reads "/Date(ms)/" or "/Date(ms+hhmm)/". The offset only picks the
// location of the result; ms is always milliseconds since the Unix epoch.
func ParseDate(s string) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	t := time.UnixMilli(ms).UTC()
	if m[2] != "" {
		hh, _ := strconv.Atoi(m[2][1:3])
		mm, _ := strconv.Atoi(m[2][3:5])
		offset := hh*3600 + mm*60
		if m[2][0] == '-' {
			offset = -offset
		}
		t = t.In(time.FixedZone(m[2], offset))
	}
	return t, true
}

// FormatDate renders t as "/Date(ms)/".
func FormatDate(t time.Time) string {
	return "/Date(" + strconv.FormatInt(t.UnixMilli(), 10) + ")/"
}

// Date is a time.Time that marshals to the ASP.NET wire form.
type Date struct {
	time.Time
}

// MarshalJSON writes the slash-escaped form "\/Date(ms)\/" that ASP.NET expects.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"\/Date(` + strconv.FormatInt(d.UnixMilli(), 10) + `)\/"`), nil
}

// UnmarshalJSON accepts the ASP.NET form, RFC 3339 text, or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("aspnetjson: date must be a string: %w", err)
	}
	if t, ok := ParseDate(s); ok {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("aspnetjson: unrecognized date %q", s)
	}
	d.Time = t
	return nil
}

// Decode unmarshals data into generic values and turns every string that holds
// an ASP.NET date into a time.Time.
func Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return Revive(v), nil
}

// Revive walks maps and slices produced by encoding/json and replaces
// ASP.NET date strings with time.Time values. Other values pass through.
func Revive(v any) any {
	switch x := v.(type) {
	case string:
		if t, ok := ParseDate(x); ok {
			return t
		}
		return x
	case map[string]any:
		for k, e := range x {
			x[k] = Revive(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = Revive(e)
		}
		return x
	}
	return v
}
