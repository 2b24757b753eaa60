package types

import (
	"encoding/json"
	"strings"
	"time"
)

// FlexDate is a calendar date carried as its canonical YYYY-MM-DD string.
// It can be unmarshaled from a plain date, a datetime, an RFC-1123 string,
// or a generic ISO-8601 timestamp; anything unparseable passes through
// unchanged (best-effort, not strict).
type FlexDate string

const dateLayout = "2006-01-02"

// dateLayouts are tried in order during normalization.
var dateLayouts = []string{
	dateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 02 Jan 2006",
}

// NormalizeDate reduces a date-ish string to YYYY-MM-DD. Unparseable input
// is returned as-is.
func NormalizeDate(s string) string {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(dateLayout)
		}
	}
	return s
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *FlexDate) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*d = FlexDate(NormalizeDate(s))
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d FlexDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// String returns the canonical date string.
func (d FlexDate) String() string {
	return string(d)
}

// IsZero reports whether the date is unset.
func (d FlexDate) IsZero() bool {
	return d == ""
}

// Time parses the canonical form into a time.Time.
func (d FlexDate) Time() (time.Time, error) {
	return time.Parse(dateLayout, string(d))
}

// AddDays returns the date shifted by n calendar days. An unparseable date
// is returned unchanged.
func (d FlexDate) AddDays(n int) FlexDate {
	t, err := d.Time()
	if err != nil {
		return d
	}
	return FlexDate(t.AddDate(0, 0, n).Format(dateLayout))
}

// DateOf converts a time.Time to its calendar date.
func DateOf(t time.Time) FlexDate {
	return FlexDate(t.Format(dateLayout))
}

// Today returns the current calendar date.
func Today() FlexDate {
	return DateOf(time.Now())
}

// DaysBetween returns to minus from in whole days. May be negative. Returns
// 0 when either side does not parse.
func DaysBetween(from, to FlexDate) int {
	f, err := from.Time()
	if err != nil {
		return 0
	}
	t, err := to.Time()
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}
