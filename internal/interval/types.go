package interval

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/akmistry/timeintervals/internal/temporal"
)

type (
	// Half-open intervals of UTC instants.
	InstantInterval = Interval[time.Time, temporal.Instants]
	// Closed intervals of calendar dates.
	DateInterval = Interval[civil.Date, temporal.Dates]
	// Half-open intervals of local date-times.
	DateTimeInterval = Interval[civil.DateTime, temporal.DateTimes]
	// Half-open intervals of offset date-times.
	OffsetDateTimeInterval = Interval[temporal.OffsetDateTime, temporal.OffsetDateTimes]
)

var (
	_ Domain[time.Time]               = temporal.Instants{}
	_ Domain[civil.DateTime]          = temporal.DateTimes{}
	_ Domain[temporal.OffsetDateTime] = temporal.OffsetDateTimes{}
	_ Rebaser[temporal.OffsetDateTime] = temporal.OffsetDateTimes{}
	_ Discrete[civil.Date]            = temporal.Dates{}
)

// Parse builds an interval from two literals in the domain's text format.
func Parse[T any, D Domain[T]](start, end string) (Interval[T, D], error) {
	var d D
	s, err := d.Parse(start)
	if err != nil {
		return Interval[T, D]{}, err
	}
	e, err := d.Parse(end)
	if err != nil {
		return Interval[T, D]{}, err
	}
	return New[T, D](s, e)
}

func ParseDates(start, end string) (DateInterval, error) {
	return Parse[civil.Date, temporal.Dates](start, end)
}

func ParseDateTimes(start, end string) (DateTimeInterval, error) {
	return Parse[civil.DateTime, temporal.DateTimes](start, end)
}

func ParseOffsetDateTimes(start, end string) (OffsetDateTimeInterval, error) {
	return Parse[temporal.OffsetDateTime, temporal.OffsetDateTimes](start, end)
}

// ParseInstants parses two zone-less date-time literals, resolving both in loc.
func ParseInstants(start, end string, loc *time.Location) (InstantInterval, error) {
	s, err := temporal.ParseInstantIn(start, loc)
	if err != nil {
		return InstantInterval{}, err
	}
	e, err := temporal.ParseInstantIn(end, loc)
	if err != nil {
		return InstantInterval{}, err
	}
	return New[time.Time, temporal.Instants](s, e)
}

func UnboundedInstants() InstantInterval {
	return Unbounded[time.Time, temporal.Instants]()
}

func UnboundedDates() DateInterval {
	return Unbounded[civil.Date, temporal.Dates]()
}

func UnboundedDateTimes() DateTimeInterval {
	return Unbounded[civil.DateTime, temporal.DateTimes]()
}

func UnboundedOffsetDateTimes() OffsetDateTimeInterval {
	return Unbounded[temporal.OffsetDateTime, temporal.OffsetDateTimes]()
}

// OffsetToInstant returns the instants covered by i.
func OffsetToInstant(i OffsetDateTimeInterval) InstantInterval {
	// Offset date-times are ordered by instant first, so the bounds stay ordered.
	return MustNew[time.Time, temporal.Instants](i.start.Time(), i.end.Time())
}

// OffsetToDateTime drops the offsets of i, keeping each bound's local
// date-time. It fails if the local date-times are out of order, which can
// happen when the bounds carry different offsets.
func OffsetToDateTime(i OffsetDateTimeInterval) (DateTimeInterval, error) {
	dti, err := New[civil.DateTime, temporal.DateTimes](i.start.DateTime, i.end.DateTime)
	if err != nil {
		return DateTimeInterval{}, fmt.Errorf("converting %v to local date-times: %w", i, err)
	}
	return dti, nil
}
