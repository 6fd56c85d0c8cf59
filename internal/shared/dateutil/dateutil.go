package dateutil

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for bare dates throughout the service.
const DateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var weekdaysZh = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// AddDays returns the calendar date n days after dateStr, computed in local
// time. n may be negative.
func AddDays(dateStr string, n int) (string, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

// ParseDateTime parses a timestamp in "2006-01-02T15:04" form; a space
// separator and trailing seconds are also accepted.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// DurationDays returns the trip length in days between two timestamps:
// ceil(|departure-arrival| / 24h), never less than 1.
func DurationDays(arrival, departure time.Time) int {
	diff := departure.Sub(arrival)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// FormatShort renders a date as "1月2日". Empty or unparsable input yields "".
func FormatShort(dateStr string) string {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
}

// FormatLong renders a date as "2024年5月1日 周三". Empty or unparsable input
// yields "".
func FormatLong(dateStr string) string {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d年%d月%d日 %s", t.Year(), int(t.Month()), t.Day(), weekdaysZh[int(t.Weekday())])
}

// FormatRange renders "5月1日 - 5月3日" for an itinerary card. A missing start
// yields "".
func FormatRange(start, end string) string {
	if start == "" {
		return ""
	}
	return FormatShort(start) + " - " + FormatShort(end)
}
