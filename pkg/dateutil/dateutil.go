package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned for input that is present but cannot be read as
// a date.
var ErrInvalidDate = errors.New("dateutil: invalid date")

const (
	// DisplayLayout is the DD/MM/YYYY layout used on every page.
	DisplayLayout = "02/01/2006"
	// Missing is rendered in place of an absent date.
	Missing = "N/A"

	sentinel = "NA"
)

// layouts are tried in order for input that is not day/month/year.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// Parse reads a sheet date. Empty input and the NA sentinel yield a nil time
// and no error.
//
// Input containing "/" is day/month/year. The parts are taken as plain
// numbers and handed to time.Date, so out of range values roll over into the
// neighbouring month or year (31/02/2024 is 2 March 2024). The result is
// local midnight.
func Parse(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == sentinel {
		return nil, nil
	}

	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		if len(parts) < 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
		}
		nums := make([]int, 3)
		for i, p := range parts[:3] {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
			}
			nums[i] = n
		}
		t := time.Date(nums[2], time.Month(nums[1]), nums[0], 0, 0, 0, 0, time.Local)
		return &t, nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// Format renders t as DD/MM/YYYY, or N/A for nil.
func Format(t *time.Time) string {
	if t == nil {
		return Missing
	}
	return t.Format(DisplayLayout)
}

// Midnight drops the time of day from t, keeping its location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from from to to. Both sides are reduced to
// their civil date first, so a daylight saving change in between never adds
// or drops a day. Seconds are used rather than a Duration, which saturates
// at roughly 292 years.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int((b.Unix() - a.Unix()) / 86400)
}
