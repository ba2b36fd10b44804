package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseAbsent(t *testing.T) {
	for _, in := range []string{"", "NA", "  "} {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", in, err)
		}
		if got != nil {
			t.Fatalf("Parse(%q): expected nil, got %v", in, got)
		}
	}
}

func TestParseDayMonthYear(t *testing.T) {
	got, err := Parse("05/03/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseOverflowRollsOver(t *testing.T) {
	got, err := Parse("31/02/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := Format(got); s != "02/03/2024" {
		t.Fatalf("expected overflow into March, got %s", s)
	}

	got, err = Parse("01/13/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := Format(got); s != "01/01/2025" {
		t.Fatalf("expected overflow into next year, got %s", s)
	}
}

func TestParseGenericLayouts(t *testing.T) {
	tests := map[string]string{
		"2024-03-05":           "05/03/2024",
		"2024-03-05T10:30:00Z": "05/03/2024",
		"March 5, 2024":        "05/03/2024",
	}
	for in, want := range tests {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", in, err)
		}
		if s := Format(got); s != want {
			t.Fatalf("Parse(%q): expected %s, got %s", in, want, s)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"soon", "aa/bb/cccc", "12/2024"} {
		got, err := Parse(in)
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("Parse(%q): expected ErrInvalidDate, got %v", in, err)
		}
		if got != nil {
			t.Fatalf("Parse(%q): expected nil time, got %v", in, got)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, in := range []string{"01/01/2020", "29/02/2024", "31/12/1999", "09/10/2030"} {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", in, err)
		}
		if out := Format(got); out != in {
			t.Fatalf("round trip of %q produced %q", in, out)
		}
	}
}

func TestFormatNil(t *testing.T) {
	if got := Format(nil); got != "N/A" {
		t.Fatalf("expected N/A, got %s", got)
	}
}

func TestDaysBetween(t *testing.T) {
	today := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.Local)
	tests := []struct {
		to   time.Time
		want int
	}{
		{time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local), 0},
		{time.Date(2024, time.March, 11, 0, 0, 0, 0, time.Local), 1},
		{time.Date(2024, time.March, 25, 0, 0, 0, 0, time.Local), 15},
		{time.Date(2024, time.March, 9, 0, 0, 0, 0, time.Local), -1},
		{time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local), 365},
		{time.Date(2524, time.March, 10, 0, 0, 0, 0, time.Local), 182621},
		{time.Date(1524, time.March, 10, 0, 0, 0, 0, time.Local), -182622},
	}
	for _, tc := range tests {
		if got := DaysBetween(today, tc.to); got != tc.want {
			t.Fatalf("DaysBetween(%v, %v): expected %d, got %d", today, tc.to, tc.want, got)
		}
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, time.March, 10, 13, 45, 12, 99, time.Local)
	want := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	if got := Midnight(in); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDaysBetweenParsedFarFuture(t *testing.T) {
	today := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)
	for raw, want := range map[string]int{"01/06/2524": 182621, "01/06/1524": -182622} {
		d, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		if got := DaysBetween(today, *d); got != want {
			t.Fatalf("DaysBetween to %s: expected %d, got %d", raw, want, got)
		}
	}
}
