package intervalctl

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDomain = errors.New("invalid domain")
)

type Domain int

const (
	DomainInstant Domain = iota
	DomainDate
	DomainDateTime
	DomainOffset
)

var domainNames = []string{
	DomainInstant:  "instant",
	DomainDate:     "date",
	DomainDateTime: "datetime",
	DomainOffset:   "offset",
}

func (d Domain) String() string {
	if d < 0 || int(d) >= len(domainNames) {
		return fmt.Sprintf("Domain(%d)", int(d))
	}
	return domainNames[d]
}

func ParseDomain(s string) (Domain, error) {
	for i, name := range domainNames {
		if s == name {
			return Domain(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDomain, s)
}
