package temporal

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

var (
	ErrParse = errors.New("invalid temporal literal")
)

const (
	dateTimeLayout      = "2006-01-02T15:04:05.999999999"
	shortDateTimeLayout = "2006-01-02T15:04"

	shortOffsetLayout = "2006-01-02T15:04Z07:00"
)

// ParseDate parses a YYYY-MM-DD literal.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: date %q", ErrParse, s)
	}
	return d, nil
}

// ParseDateTime parses a zone-less YYYY-MM-DDTHH:MM[:SS[.fff]] literal.
func ParseDateTime(s string) (civil.DateTime, error) {
	for _, layout := range []string{dateTimeLayout, shortDateTimeLayout} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return civil.DateTimeOf(t), nil
		}
	}
	return civil.DateTime{}, fmt.Errorf("%w: date-time %q", ErrParse, s)
}

// ParseInstant parses an RFC 3339 literal carrying its own offset, e.g.
// 2018-01-01T00:00:00Z. The result is in UTC.
func ParseInstant(s string) (time.Time, error) {
	t, err := parseWithOffset(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: instant %q", ErrParse, s)
	}
	return t.UTC(), nil
}

// ParseInstantIn parses a zone-less date-time literal and resolves it in loc.
func ParseInstantIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, fmt.Errorf("%w: instant %q: nil location", ErrParse, s)
	}
	dt, err := ParseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return dt.In(loc).UTC(), nil
}

// ParseOffsetDateTime parses a date-time followed by Z or a ±HH:MM offset.
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	t, err := parseWithOffset(s)
	if err != nil {
		return OffsetDateTime{}, fmt.Errorf("%w: offset date-time %q", ErrParse, s)
	}
	return OffsetDateTimeOf(t), nil
}

func parseWithOffset(s string) (t time.Time, err error) {
	for _, layout := range []string{time.RFC3339Nano, shortOffsetLayout} {
		t, err = time.Parse(layout, s)
		if err == nil {
			return
		}
	}
	return
}
