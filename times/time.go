package times

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const YearMonthDayLayout = "2006-01-02"

// timestampLayouts are tried in order. Fractional seconds are accepted by every
// layout that has a seconds field.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05 MST",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	YearMonthDayLayout,
}

// ParseTimestamp coerces a warehouse timestamp rendering into a UTC time.
// The second return value is false when the value is empty or matches no known layout.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// CurrentDateUTC returns the current calendar date in the UTC time zone.
func CurrentDateUTC() civil.Date {
	return civil.DateOf(time.Now().UTC())
}

// DaysSince returns the number of whole days between from and to, negative when from is after to.
func DaysSince(to, from civil.Date) int {
	return to.DaysSince(from)
}
