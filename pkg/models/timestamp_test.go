package models

import (
	"testing"
	"time"
)

func TestNowInstantShape(t *testing.T) {
	s := NowInstant()
	if len(s) != len(TimeLayout) {
		t.Fatalf("instant %q should be fixed width %d", s, len(TimeLayout))
	}
	if _, err := time.Parse(TimeLayout, s); err != nil {
		t.Fatalf("instant %q does not round-trip: %v", s, err)
	}
}

func TestParseInstantWidening(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2024-06-01T12:30:45.123456", "2024-06-01T12:30:45.123456"},
		{"2024-06-01T12:30:45", "2024-06-01T12:30:45.000000"},
		{"2024-06-01T12:30", "2024-06-01T12:30:00.000000"},
		{"2024-06-01", "2024-06-01T00:00:00.000000"},
	}
	for _, tc := range cases {
		got, err := ParseInstant(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got %q, want %q", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "yesterday", "2024-13-01", "12:30:45", "2024-06-01T99:00"} {
		if _, err := ParseInstant(bad); err == nil {
			t.Fatalf("parse %q: expected error", bad)
		}
	}
}

// Fixed-width instants must order lexicographically the same way the
// underlying times do; range queries rely on it.
func TestInstantOrdering(t *testing.T) {
	earlier := time.Date(2024, 6, 1, 9, 59, 59, 999999000, time.UTC).Format(TimeLayout)
	later := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC).Format(TimeLayout)
	if !(earlier < later) {
		t.Fatalf("string order disagrees with time order: %q vs %q", earlier, later)
	}
}
