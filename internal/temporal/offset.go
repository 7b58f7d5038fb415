package temporal

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// OffsetDateTime is a local date-time paired with a fixed UTC offset. Unlike
// time.Time it is compared structurally, so two values are == only when both
// the local date-time and the offset match.
type OffsetDateTime struct {
	DateTime civil.DateTime
	// Seconds east of UTC.
	Offset int
}

func OffsetDateTimeOf(t time.Time) OffsetDateTime {
	_, off := t.Zone()
	return OffsetDateTime{
		DateTime: civil.DateTimeOf(t),
		Offset:   off,
	}
}

// Time returns the instant t denotes, in a fixed zone carrying t's offset.
func (t OffsetDateTime) Time() time.Time {
	if t.Offset == 0 {
		return t.DateTime.In(time.UTC)
	}
	return t.DateTime.In(time.FixedZone("", t.Offset))
}

// AtOffset returns the same instant expressed with a different offset.
func (t OffsetDateTime) AtOffset(offset int) OffsetDateTime {
	u := t.Time().UTC().Add(time.Duration(offset) * time.Second)
	return OffsetDateTime{
		DateTime: civil.DateTimeOf(u),
		Offset:   offset,
	}
}

func (t OffsetDateTime) String() string {
	return t.DateTime.String() + formatOffset(t.Offset)
}

func formatOffset(offset int) string {
	if offset == 0 {
		return "Z"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	h, m, s := offset/3600, (offset/60)%60, offset%60
	if s != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}
