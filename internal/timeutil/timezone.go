// Package timeutil converts task execution timestamps between the backend's
// UTC ISO-8601 wire format and the JST wall-clock format used for display
// and editing. The zone is a fixed +09:00 offset; JST has no daylight-saving
// transitions, so no timezone database is needed.
package timeutil

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrMissingTimestamp = errors.New("missing timestamp")
)

const (
	// editableLayout is the minute-precision format of a datetime input
	// field, no zone suffix.
	editableLayout = "2006-01-02T15:04"
	// utcISOLayout renders millisecond precision with a Z suffix for UTC.
	utcISOLayout = "2006-01-02T15:04:05.000Z07:00"
)

var jst = time.FixedZone("JST", 9*60*60)

// wireLayouts are the shapes the backend emits: RFC3339 with zone, or a
// naive datetime that is UTC by convention.
var wireLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ToLocalEditable converts a UTC ISO-8601 instant to a JST wall-clock string
// at minute precision. Seconds are truncated, not rounded.
func ToLocalEditable(utcISO string) (string, error) {
	instant, err := parseUTC(utcISO)
	if err != nil {
		return "", err
	}
	return instant.In(jst).Format(editableLayout), nil
}

// ToUTCISO interprets a minute-precision wall-clock string as JST and
// returns the corresponding UTC instant in full ISO-8601 form.
func ToUTCISO(localEditable string) (string, error) {
	if localEditable == "" {
		return "", ErrMissingTimestamp
	}

	local, err := time.ParseInLocation(editableLayout, localEditable, jst)
	if err != nil {
		// Tolerate seconds in the input; precision stays minute-level.
		local, err = time.ParseInLocation("2006-01-02T15:04:05", localEditable, jst)
		if err != nil {
			return "", ErrInvalidTimestamp
		}
		local = local.Truncate(time.Minute)
	}

	return local.UTC().Format(utcISOLayout), nil
}

// ParseWire parses a backend timestamp into a UTC instant. It accepts the
// same shapes ToLocalEditable does.
func ParseWire(s string) (time.Time, error) {
	return parseUTC(s)
}

// DayRange converts an inclusive pair of JST calendar dates (YYYY-MM-DD)
// into the half-open UTC interval [start, end) covering those days.
func DayRange(fromDate, toDate string) (time.Time, time.Time, error) {
	if fromDate == "" || toDate == "" {
		return time.Time{}, time.Time{}, ErrMissingTimestamp
	}

	from, err := time.ParseInLocation("2006-01-02", fromDate, jst)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimestamp
	}
	to, err := time.ParseInLocation("2006-01-02", toDate, jst)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimestamp
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidTimestamp
	}

	return from.UTC(), to.AddDate(0, 0, 1).UTC(), nil
}

func parseUTC(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	for _, layout := range wireLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}
