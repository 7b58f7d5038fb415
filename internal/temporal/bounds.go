package temporal

import (
	"time"

	"cloud.google.com/go/civil"
)

// Bounds of every temporal domain. Points outside them are representable, but
// Normalize clamps to them and the unbounded intervals span exactly them.
var (
	MinDate = civil.Date{Year: 1970, Month: time.January, Day: 1}
	MaxDate = civil.Date{Year: 4000, Month: time.December, Day: 31}

	MinDateTime = civil.DateTime{Date: MinDate}
	MaxDateTime = civil.DateTime{Date: MaxDate}

	MinInstant = time.Unix(0, 0).UTC()
	MaxInstant = MaxDateTime.In(time.UTC)

	MinOffsetDateTime = OffsetDateTime{DateTime: MinDateTime}
	MaxOffsetDateTime = OffsetDateTime{DateTime: MaxDateTime}
)
