package temporal

import (
	"math"
	"time"

	"cloud.google.com/go/civil"
)

// The domain types are zero-size descriptors used as type arguments. Each one
// supplies ordering, bounds, boundary kind and ISO-8601 text forms for its
// point type.

// Instants is the domain of UTC instants. Intervals over it are half-open.
type Instants struct{}

func (Instants) Compare(a, b time.Time) int {
	return compareTimes(a, b)
}

func (Instants) Min() time.Time { return MinInstant }
func (Instants) Max() time.Time { return MaxInstant }
func (Instants) Closed() bool   { return false }

func (Instants) Canonical(t time.Time) time.Time {
	return t.UTC()
}

func (Instants) Parse(s string) (time.Time, error) {
	return ParseInstant(s)
}

func (Instants) Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (Instants) Sub(a, b time.Time) time.Duration {
	return a.Sub(b)
}

// Dates is the discrete domain of calendar days. Intervals over it are closed
// at both ends.
type Dates struct{}

func (Dates) Compare(a, b civil.Date) int {
	if a.Before(b) {
		return -1
	} else if a.After(b) {
		return 1
	}
	return 0
}

func (Dates) Min() civil.Date { return MinDate }
func (Dates) Max() civil.Date { return MaxDate }
func (Dates) Closed() bool    { return true }

func (Dates) Canonical(d civil.Date) civil.Date {
	return d
}

func (Dates) Add(d civil.Date, n int) civil.Date {
	return d.AddDays(n)
}

func (Dates) Parse(s string) (civil.Date, error) {
	return ParseDate(s)
}

func (Dates) Format(d civil.Date) string {
	return d.String()
}

const maxDurationDays = math.MaxInt64 / int64(24*time.Hour)

// Sub returns the time between the starts of days a and b. Like
// time.Time.Sub, the result saturates at the Duration bounds.
func (Dates) Sub(a, b civil.Date) time.Duration {
	days := int64(a.DaysSince(b))
	if days > maxDurationDays {
		return math.MaxInt64
	} else if days < -maxDurationDays {
		return math.MinInt64
	}
	return time.Duration(days) * 24 * time.Hour
}

// DateTimes is the domain of zone-less local date-times. Intervals over it are
// half-open.
type DateTimes struct{}

func (DateTimes) Compare(a, b civil.DateTime) int {
	if a.Before(b) {
		return -1
	} else if a.After(b) {
		return 1
	}
	return 0
}

func (DateTimes) Min() civil.DateTime { return MinDateTime }
func (DateTimes) Max() civil.DateTime { return MaxDateTime }
func (DateTimes) Closed() bool        { return false }

func (DateTimes) Canonical(dt civil.DateTime) civil.DateTime {
	return dt
}

func (DateTimes) Parse(s string) (civil.DateTime, error) {
	return ParseDateTime(s)
}

func (DateTimes) Format(dt civil.DateTime) string {
	return dt.String()
}

func (DateTimes) Sub(a, b civil.DateTime) time.Duration {
	return a.In(time.UTC).Sub(b.In(time.UTC))
}

// OffsetDateTimes is the domain of date-times carrying a UTC offset. Points
// are ordered by instant, then by local date-time, so the same instant
// written with two offsets gives two distinct, ordered points.
type OffsetDateTimes struct{}

func (OffsetDateTimes) Compare(a, b OffsetDateTime) int {
	if c := compareTimes(a.Time(), b.Time()); c != 0 {
		return c
	}
	return DateTimes{}.Compare(a.DateTime, b.DateTime)
}

func (OffsetDateTimes) Min() OffsetDateTime { return MinOffsetDateTime }
func (OffsetDateTimes) Max() OffsetDateTime { return MaxOffsetDateTime }
func (OffsetDateTimes) Closed() bool        { return false }

func (OffsetDateTimes) Canonical(t OffsetDateTime) OffsetDateTime {
	return t
}

func (OffsetDateTimes) Parse(s string) (OffsetDateTime, error) {
	return ParseOffsetDateTime(s)
}

func (OffsetDateTimes) Format(t OffsetDateTime) string {
	return t.String()
}

// Rebase returns bound at the offset of like.
func (OffsetDateTimes) Rebase(bound, like OffsetDateTime) OffsetDateTime {
	return bound.AtOffset(like.Offset)
}

func (OffsetDateTimes) Sub(a, b OffsetDateTime) time.Duration {
	return a.Time().Sub(b.Time())
}

func compareTimes(a, b time.Time) int {
	if a.Before(b) {
		return -1
	} else if a.After(b) {
		return 1
	}
	return 0
}
