package intervalctl

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/akmistry/timeintervals/internal/interval"
	"github.com/akmistry/timeintervals/internal/intervalmap"
	"github.com/akmistry/timeintervals/internal/temporal"
)

// Run applies cmds in order to an empty map of the domain selected in opts,
// then writes the resulting entries, their span and the query result to w.
func Run(w io.Writer, cmds []Command, opts Options) error {
	err := opts.setDefaults()
	if err != nil {
		return err
	}

	switch opts.Domain {
	case DomainInstant:
		loc := opts.Location
		parse := func(s string) (time.Time, error) {
			t, err := temporal.ParseInstant(s)
			if err == nil {
				return t, nil
			}
			return temporal.ParseInstantIn(s, loc)
		}
		return run(w, cmds, opts, intervalmap.NewInstantMap[string](), parse)
	case DomainDate:
		return run(w, cmds, opts, intervalmap.NewDateMap[string](), temporal.ParseDate)
	case DomainDateTime:
		return run(w, cmds, opts, intervalmap.NewDateTimeMap[string](), temporal.ParseDateTime)
	case DomainOffset:
		return run(w, cmds, opts, intervalmap.NewOffsetDateTimeMap[string](), temporal.ParseOffsetDateTime)
	}
	return fmt.Errorf("%w: %v", ErrInvalidDomain, opts.Domain)
}

func parseInterval[T any, D interval.Domain[T]](c Command, parse func(string) (T, error)) (interval.Interval[T, D], error) {
	start, err := parse(c.Start)
	if err != nil {
		return interval.Interval[T, D]{}, err
	}
	end, err := parse(c.End)
	if err != nil {
		return interval.Interval[T, D]{}, err
	}
	return interval.New[T, D](start, end)
}

func run[T comparable, D interval.Domain[T]](w io.Writer, cmds []Command, opts Options,
	m *intervalmap.Map[T, D, string], parse func(string) (T, error)) error {
	for _, c := range cmds {
		key, err := parseInterval[T, D](c, parse)
		if err != nil {
			return fmt.Errorf("%v %s %s: %w", c.Op, c.Start, c.End, err)
		}
		switch c.Op {
		case OpPut:
			m.Put(key, c.Value)
		case OpRemove:
			m.Remove(key)
		default:
			return fmt.Errorf("%w: %v", ErrInvalidCommand, c.Op)
		}
		slog.Debug("Applied command", "op", c.Op, "interval", key, "value", c.Value,
			"entries", m.Len())
	}

	r := &report[T, D]{entries: m.Entries()}
	if span, err := m.Span(); err == nil {
		r.span = &span
		r.duration, r.hasDuration = spanDuration(span)
	}
	if opts.Query != "" {
		p, err := parse(opts.Query)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}
		r.query = &queryResult{point: opts.Query}
		r.query.value, r.query.found = m.Get(p)
	}
	slog.Debug("Map built", "domain", opts.Domain, "entries", len(r.entries))

	switch opts.Format {
	case FormatJSON:
		return r.writeJSON(w)
	case FormatPrototext:
		return r.writePrototext(w)
	}
	return r.writeText(w)
}

type subtracter[T any] interface {
	Sub(a, b T) time.Duration
}

// spanDuration returns the time covered by i, if its domain can measure it
// and it fits in a Duration.
func spanDuration[T any, D interval.Domain[T]](i interval.Interval[T, D]) (time.Duration, bool) {
	var d D
	s, ok := any(d).(subtracter[T])
	if !ok {
		return 0, false
	}
	dur := s.Sub(i.ExclusiveEnd(), i.Start())
	if dur == math.MaxInt64 || dur == math.MinInt64 {
		// Saturated.
		return 0, false
	}
	return dur, true
}
