package interval

import (
	"iter"

	"cloud.google.com/go/civil"
)

// Steps returns the members of i, |step| units apart. A positive step walks
// forward from Start(); a negative step walks backward from the last member.
// The sequence is lazy and may be ranged over any number of times.
func Steps[T any, D Discrete[T]](i Interval[T, D], step int) iter.Seq[T] {
	if step == 0 {
		panic("interval: zero step")
	}

	var d D
	return func(yield func(T) bool) {
		if step > 0 {
			for p := i.start; i.Contains(p); p = d.Add(p, step) {
				if !yield(p) {
					return
				}
			}
			return
		}

		last := d.Add(i.ExclusiveEnd(), -1)
		for p := last; d.Compare(p, i.start) >= 0; p = d.Add(p, step) {
			if !yield(p) {
				return
			}
		}
	}
}

// Days returns every date in i, in order.
func Days(i DateInterval) iter.Seq[civil.Date] {
	return Steps(i, 1)
}

// DaysDown returns every date in i, latest first.
func DaysDown(i DateInterval) iter.Seq[civil.Date] {
	return Steps(i, -1)
}

