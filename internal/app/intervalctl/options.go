package intervalctl

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidFormat = errors.New("invalid output format")
)

const (
	FormatText      = "text"
	FormatJSON      = "json"
	FormatPrototext = "prototext"
)

type Options struct {
	Domain Domain

	// Location resolves instant literals that carry no offset. Defaults to
	// UTC.
	Location *time.Location

	// Output format, one of FormatText (default), FormatJSON or
	// FormatPrototext.
	Format string

	// If set, the value bound to this point is reported.
	Query string
}

func setDefaultIfZero[V comparable](v *V, defaultVal V) {
	var zeroVal V
	if *v == zeroVal {
		*v = defaultVal
	}
}

func (o *Options) setDefaults() error {
	setDefaultIfZero(&o.Format, FormatText)
	setDefaultIfZero(&o.Location, time.UTC)

	switch o.Format {
	case FormatText, FormatJSON, FormatPrototext:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidFormat, o.Format)
}
