package interval

// Domain describes an ordered temporal point type T. Implementations are
// zero-size types, so an Interval carries no per-value domain state.
type Domain[T any] interface {
	Compare(a, b T) int
	Min() T
	Max() T

	// Closed reports whether interval end points are members. Closed domains
	// must also implement Discrete.
	Closed() bool

	// Canonical returns the representation of t used for == comparison.
	Canonical(t T) T

	Parse(s string) (T, error)
	Format(t T) string
}

// Discrete domains have a successor function. Add(t, n) steps n units from t
// and n may be negative.
type Discrete[T any] interface {
	Domain[T]
	Add(t T, n int) T
}

// Rebaser is implemented by domains whose points carry detail beyond their
// position in the order, such as a UTC offset. Rebase returns bound written
// the way like is.
type Rebaser[T any] interface {
	Rebase(bound, like T) T
}

func stepper[T any, D Domain[T]]() Discrete[T] {
	var d D
	s, ok := any(d).(Discrete[T])
	if !ok {
		panic("closed interval domain is not discrete")
	}
	return s
}
