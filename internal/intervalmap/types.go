package intervalmap

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/akmistry/timeintervals/internal/temporal"
)

// NewInstantMap returns a coalescing map of UTC instant intervals.
func NewInstantMap[V comparable]() *Map[time.Time, temporal.Instants, V] {
	return NewCoalescing[time.Time, temporal.Instants, V]()
}

// NewDateMap returns a map of closed date intervals. Adjacent entries with
// equal values are kept apart, so entries come back as they were put.
func NewDateMap[V comparable]() *Map[civil.Date, temporal.Dates, V] {
	return New[civil.Date, temporal.Dates, V]()
}

// NewDateTimeMap returns a coalescing map of local date-time intervals.
func NewDateTimeMap[V comparable]() *Map[civil.DateTime, temporal.DateTimes, V] {
	return NewCoalescing[civil.DateTime, temporal.DateTimes, V]()
}

func NewOffsetDateTimeMap[V comparable]() *Map[temporal.OffsetDateTime, temporal.OffsetDateTimes, V] {
	return New[temporal.OffsetDateTime, temporal.OffsetDateTimes, V]()
}
