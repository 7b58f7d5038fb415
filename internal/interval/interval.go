package interval

import (
	"fmt"
)

// Interval is an immutable range of points of a temporal domain. For closed
// domains both end points are members; otherwise the interval is half-open,
// [start, end), and start == end denotes the empty interval.
//
// Intervals with the same bounds are ==, so they can be used as map keys.
type Interval[T any, D Domain[T]] struct {
	start, end T
}

// New returns the interval between start and end. It fails with
// ErrInvalidRange if start is after end.
func New[T any, D Domain[T]](start, end T) (Interval[T, D], error) {
	var d D
	start, end = d.Canonical(start), d.Canonical(end)
	if d.Compare(start, end) > 0 {
		return Interval[T, D]{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidRange, d.Format(start), d.Format(end))
	}
	return Interval[T, D]{start: start, end: end}, nil
}

func MustNew[T any, D Domain[T]](start, end T) Interval[T, D] {
	i, err := New[T, D](start, end)
	if err != nil {
		panic(err)
	}
	return i
}

// Unbounded returns the interval spanning the whole domain, [Min, Max].
func Unbounded[T any, D Domain[T]]() Interval[T, D] {
	var d D
	return Interval[T, D]{start: d.Min(), end: d.Max()}
}

// FromExclusive converts the half-open range [lo, hi) into an interval. The
// second result is false if the range holds no point of the domain.
func FromExclusive[T any, D Domain[T]](lo, hi T) (Interval[T, D], bool) {
	var d D
	if d.Compare(lo, hi) >= 0 {
		return Interval[T, D]{}, false
	}
	if d.Closed() {
		hi = stepper[T, D]().Add(hi, -1)
	}
	return Interval[T, D]{start: d.Canonical(lo), end: d.Canonical(hi)}, true
}

func (i Interval[T, D]) Start() T {
	return i.start
}

func (i Interval[T, D]) End() T {
	return i.end
}

// ExclusiveEnd returns the first point after the interval, so that i covers
// exactly [Start(), ExclusiveEnd()).
func (i Interval[T, D]) ExclusiveEnd() T {
	var d D
	if d.Closed() {
		return stepper[T, D]().Add(i.end, 1)
	}
	return i.end
}

func (i Interval[T, D]) Closed() bool {
	var d D
	return d.Closed()
}

// IsEmpty reports whether i contains no point. Only half-open intervals with
// start == end are empty.
func (i Interval[T, D]) IsEmpty() bool {
	var d D
	return !d.Closed() && d.Compare(i.start, i.end) == 0
}

func (i Interval[T, D]) Equal(other Interval[T, D]) bool {
	var d D
	return d.Compare(i.start, other.start) == 0 && d.Compare(i.end, other.end) == 0
}

func (i Interval[T, D]) Contains(p T) bool {
	var d D
	if d.Compare(p, i.start) < 0 {
		return false
	}
	c := d.Compare(p, i.end)
	if d.Closed() {
		return c <= 0
	}
	return c < 0
}

// ContainsInterval reports whether other lies entirely within i.
func (i Interval[T, D]) ContainsInterval(other Interval[T, D]) bool {
	var d D
	return d.Compare(i.start, other.start) <= 0 && d.Compare(i.end, other.end) >= 0
}

// Overlaps reports whether i and other share a point. Closed intervals that
// touch at an end point overlap; half-open ones do not, since the shared
// point belongs only to the later interval. An empty interval overlaps
// nothing.
func (i Interval[T, D]) Overlaps(other Interval[T, D]) bool {
	var d D
	if d.Closed() {
		return d.Compare(i.start, other.end) <= 0 && d.Compare(i.end, other.start) >= 0
	}
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}
	return d.Compare(i.start, other.end) < 0 && d.Compare(i.end, other.start) > 0
}

// Overlap returns the intersection of i and other. The second result is
// false if they do not overlap.
func (i Interval[T, D]) Overlap(other Interval[T, D]) (Interval[T, D], bool) {
	var d D
	start, end := i.start, i.end
	if d.Compare(other.start, start) > 0 {
		start = other.start
	}
	if d.Compare(other.end, end) < 0 {
		end = other.end
	}

	c := d.Compare(start, end)
	if c > 0 || (c == 0 && !d.Closed()) {
		return Interval[T, D]{}, false
	}
	return Interval[T, D]{start: start, end: end}, true
}

// Gap returns the interval strictly between i and other, in whichever order
// they lie. It fails with ErrInvalidRange if they overlap, if one lies within
// the other, or if they are adjacent closed intervals with no point between
// them. The gap between adjacent half-open intervals is empty.
func (i Interval[T, D]) Gap(other Interval[T, D]) (Interval[T, D], error) {
	var d D
	if i.Overlaps(other) {
		return Interval[T, D]{}, fmt.Errorf("%w: %v overlaps %v, no gap",
			ErrInvalidRange, i, other)
	}

	first, second := i, other
	if d.Compare(other.start, i.start) < 0 {
		first, second = other, i
	}
	if !d.Closed() {
		if d.Compare(first.end, second.start) > 0 {
			// An empty interval inside the other one.
			return Interval[T, D]{}, fmt.Errorf("%w: %v lies within %v, no gap",
				ErrInvalidRange, second, first)
		}
		return Interval[T, D]{start: first.end, end: second.start}, nil
	}

	gap, ok := FromExclusive[T, D](first.ExclusiveEnd(), second.start)
	if !ok {
		return Interval[T, D]{}, fmt.Errorf("%w: %v and %v are adjacent, no gap",
			ErrInvalidRange, i, other)
	}
	return gap, nil
}

// Normalize clamps i to the bounds of its domain. For domains implementing
// Rebaser, a clamped end point is the bound written like the point it
// replaces.
func (i Interval[T, D]) Normalize() Interval[T, D] {
	var d D
	rebase := func(bound, like T) T { return bound }
	if r, ok := any(d).(Rebaser[T]); ok {
		rebase = r.Rebase
	}

	n := i
	if d.Compare(n.start, d.Min()) < 0 {
		n.start = rebase(d.Min(), i.start)
	}
	if d.Compare(n.end, d.Max()) > 0 {
		n.end = rebase(d.Max(), i.end)
	}
	if d.Compare(n.start, n.end) > 0 {
		// i lay entirely outside the domain bounds.
		if d.Compare(i.end, d.Min()) < 0 {
			n.end = n.start
		} else {
			n.start = n.end
		}
	}
	return n
}

// IsUnbounded reports whether i spans exactly the whole domain.
func (i Interval[T, D]) IsUnbounded() bool {
	return i.Equal(Unbounded[T, D]())
}

func (i Interval[T, D]) String() string {
	var d D
	closing := ')'
	if d.Closed() {
		closing = ']'
	}
	return fmt.Sprintf("[%s, %s%c", d.Format(i.start), d.Format(i.end), closing)
}
