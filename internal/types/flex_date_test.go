package types

import (
	"encoding/json"
	"testing"
)

// TestNormalizeDate tests canonicalization of the accepted date forms
func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain date", "2026-03-15", "2026-03-15"},
		{"datetime", "2026-03-15 08:30:00", "2026-03-15"},
		{"iso8601", "2026-03-15T08:30:00Z", "2026-03-15"},
		{"rfc1123", "Sun, 15 Mar 2026 08:30:00 GMT", "2026-03-15"},
		{"garbage passes through", "not-a-date", "not-a-date"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeDate(tc.in)
			if got != tc.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// TestFlexDateUnmarshal tests JSON decoding into the canonical form
func TestFlexDateUnmarshal(t *testing.T) {
	var d FlexDate
	if err := json.Unmarshal([]byte(`"2026-03-15T08:30:00Z"`), &d); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if string(d) != "2026-03-15" {
		t.Errorf("Expected 2026-03-15, got %s", d)
	}
}

// TestFlexDateAddDays tests day arithmetic across a month boundary
func TestFlexDateAddDays(t *testing.T) {
	d := FlexDate("2026-01-30")
	if got := d.AddDays(3); string(got) != "2026-02-02" {
		t.Errorf("AddDays(3) = %s, want 2026-02-02", got)
	}
	if got := d.AddDays(-30); string(got) != "2025-12-31" {
		t.Errorf("AddDays(-30) = %s, want 2025-12-31", got)
	}
}

// TestDaysBetween tests signed distances between calendar dates
func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2026-03-15", "2026-03-18", 3},
		{"2026-03-18", "2026-03-15", -3},
		{"2026-03-15", "2026-03-15", 0},
		{"bad", "2026-03-15", 0},
	}
	for _, tc := range cases {
		if got := DaysBetween(FlexDate(tc.from), FlexDate(tc.to)); got != tc.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

// TestFlexIntUnmarshal tests number-or-string decoding
func TestFlexIntUnmarshal(t *testing.T) {
	var n FlexInt
	if err := json.Unmarshal([]byte(`42`), &n); err != nil {
		t.Fatalf("Unmarshal number failed: %v", err)
	}
	if n.Uint64() != 42 {
		t.Errorf("Expected 42, got %d", n.Uint64())
	}

	if err := json.Unmarshal([]byte(`"17"`), &n); err != nil {
		t.Fatalf("Unmarshal string failed: %v", err)
	}
	if n.Uint64() != 17 {
		t.Errorf("Expected 17, got %d", n.Uint64())
	}
}

// TestFlexListUnmarshal tests single-object and array decoding
func TestFlexListUnmarshal(t *testing.T) {
	type item struct {
		Name string `json:"Name"`
	}

	var single FlexList[item]
	if err := json.Unmarshal([]byte(`{"Name":"a"}`), &single); err != nil {
		t.Fatalf("Unmarshal object failed: %v", err)
	}
	if len(single) != 1 || single[0].Name != "a" {
		t.Errorf("Expected one item 'a', got %+v", single)
	}

	var list FlexList[item]
	if err := json.Unmarshal([]byte(`[{"Name":"a"},{"Name":"b"}]`), &list); err != nil {
		t.Fatalf("Unmarshal array failed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("Expected two items, got %+v", list)
	}
}
