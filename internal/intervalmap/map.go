package intervalmap

import (
	"errors"
	"iter"
	"log"

	"github.com/google/btree"

	"github.com/akmistry/timeintervals/internal/interval"
)

const (
	treeDegree = 16
)

var (
	ErrEmpty = errors.New("interval map is empty")
)

// Entries are stored as half-open extents [lo, hi), whatever the boundary
// kind of the domain. Closed intervals are translated on the way in and out.
type entry[T any, V any] struct {
	lo, hi T
	value  V
}

// Entry is one interval and the value bound to it.
type Entry[T any, D interval.Domain[T], V any] struct {
	Interval interval.Interval[T, D]
	Value    V
}

// Map binds values to pairwise disjoint intervals of a temporal domain.
// Putting an interval overwrites whatever part of existing entries it
// overlaps. A coalescing map also merges an entry with touching neighbours
// bound to an equal (==) value.
//
// The zero value is an empty, non-coalescing map. A Map is not safe for
// concurrent use; callers must serialise mutations.
type Map[T comparable, D interval.Domain[T], V comparable] struct {
	tree     *btree.BTreeG[*entry[T, V]]
	coalesce bool
}

func New[T comparable, D interval.Domain[T], V comparable]() *Map[T, D, V] {
	m := &Map[T, D, V]{}
	m.init()
	return m
}

func NewCoalescing[T comparable, D interval.Domain[T], V comparable]() *Map[T, D, V] {
	m := New[T, D, V]()
	m.coalesce = true
	return m
}

func lessEntry[T any, D interval.Domain[T], V any](a, b *entry[T, V]) bool {
	var d D
	return d.Compare(a.lo, b.lo) < 0
}

func (m *Map[T, D, V]) init() {
	if m.tree == nil {
		m.tree = btree.NewG(treeDegree, lessEntry[T, D, V])
	}
}

func (m *Map[T, D, V]) cmp(a, b T) int {
	var d D
	return d.Compare(a, b)
}

func (m *Map[T, D, V]) Coalescing() bool {
	return m.coalesce
}

// floor returns the entry with the greatest start <= p.
func (m *Map[T, D, V]) floor(p T) (e *entry[T, V], ok bool) {
	m.tree.DescendLessOrEqual(&entry[T, V]{lo: p}, func(i *entry[T, V]) bool {
		e, ok = i, true
		return false
	})
	return
}

// ceil returns the entry with the least start >= p.
func (m *Map[T, D, V]) ceil(p T) (e *entry[T, V], ok bool) {
	m.tree.AscendGreaterOrEqual(&entry[T, V]{lo: p}, func(i *entry[T, V]) bool {
		e, ok = i, true
		return false
	})
	return
}

func (m *Map[T, D, V]) find(p T) (*entry[T, V], bool) {
	e, ok := m.floor(p)
	if !ok || m.cmp(p, e.hi) >= 0 {
		return nil, false
	}
	return e, true
}

// overlapping returns the entries intersecting [lo, hi), in start order.
func (m *Map[T, D, V]) overlapping(lo, hi T) []*entry[T, V] {
	var items []*entry[T, V]
	if e, ok := m.floor(lo); ok && m.cmp(e.lo, lo) < 0 && m.cmp(e.hi, lo) > 0 {
		items = append(items, e)
	}
	m.tree.AscendGreaterOrEqual(&entry[T, V]{lo: lo}, func(e *entry[T, V]) bool {
		if m.cmp(e.lo, hi) >= 0 {
			return false
		}
		items = append(items, e)
		return true
	})
	return items
}

func (m *Map[T, D, V]) insert(e *entry[T, V]) {
	old, replaced := m.tree.ReplaceOrInsert(e)
	if replaced {
		log.Panicf("unexpected old entry: %+v, adding new entry: %+v", old, e)
	}
}

func (m *Map[T, D, V]) delete(e *entry[T, V]) {
	if old, ok := m.tree.Delete(e); !ok || old != e {
		log.Panicf("entry not deleted: %+v", e)
	}
}

// punch clears [lo, hi), truncating entries that stick out on either side
// and splitting an entry that covers the whole range.
func (m *Map[T, D, V]) punch(lo, hi T) {
	for _, e := range m.overlapping(lo, hi) {
		if m.cmp(e.lo, lo) < 0 {
			if m.cmp(e.hi, hi) > 0 {
				// Old entry completely covers the hole. Keep both ends.
				m.insert(&entry[T, V]{lo: hi, hi: e.hi, value: e.value})
			}
			// Truncating keeps e's key, so it can stay in the tree.
			e.hi = lo
			continue
		}

		m.delete(e)
		if m.cmp(e.hi, hi) > 0 {
			m.insert(&entry[T, V]{lo: hi, hi: e.hi, value: e.value})
		}
	}
}

func (m *Map[T, D, V]) toInterval(lo, hi T) interval.Interval[T, D] {
	i, ok := interval.FromExclusive[T, D](lo, hi)
	if !ok {
		log.Panicf("empty entry stored: [%v, %v)", lo, hi)
	}
	return i
}

func (m *Map[T, D, V]) toEntry(e *entry[T, V]) Entry[T, D, V] {
	return Entry[T, D, V]{Interval: m.toInterval(e.lo, e.hi), Value: e.value}
}

// Get returns the value bound to the interval containing p.
func (m *Map[T, D, V]) Get(p T) (value V, ok bool) {
	m.init()
	e, ok := m.find(p)
	if !ok {
		return
	}
	return e.value, true
}

// GetRange returns the values of all entries overlapping key, in interval
// order. Entries partially overlapping key are included.
func (m *Map[T, D, V]) GetRange(key interval.Interval[T, D]) []V {
	m.init()
	lo, hi := key.Start(), key.ExclusiveEnd()
	if m.cmp(lo, hi) >= 0 {
		return nil
	}
	var values []V
	for _, e := range m.overlapping(lo, hi) {
		values = append(values, e.value)
	}
	return values
}

// Put binds value to key, replacing any existing binding in key's span.
// Putting an empty interval does nothing.
func (m *Map[T, D, V]) Put(key interval.Interval[T, D], value V) {
	m.init()
	lo, hi := key.Start(), key.ExclusiveEnd()
	if m.cmp(lo, hi) >= 0 {
		return
	}

	// Punch a hole, and put the new entry at that hole.
	m.punch(lo, hi)

	n := &entry[T, V]{lo: lo, hi: hi, value: value}
	if m.coalesce {
		if prev, ok := m.floor(lo); ok && prev.value == value && m.cmp(prev.hi, lo) == 0 {
			m.delete(prev)
			n.lo = prev.lo
		}
		if next, ok := m.ceil(hi); ok && next.value == value && m.cmp(next.lo, hi) == 0 {
			m.delete(next)
			n.hi = next.hi
		}
	}
	m.insert(n)
}

// Remove unbinds every point of key. Entries partially covered by key keep
// the part outside it.
func (m *Map[T, D, V]) Remove(key interval.Interval[T, D]) {
	m.init()
	lo, hi := key.Start(), key.ExclusiveEnd()
	if m.cmp(lo, hi) >= 0 {
		return
	}
	m.punch(lo, hi)
}

// PutAll puts every entry of other into m, in interval order.
func (m *Map[T, D, V]) PutAll(other *Map[T, D, V]) {
	if other == m {
		return
	}
	for _, e := range other.Entries() {
		m.Put(e.Interval, e.Value)
	}
}

func (m *Map[T, D, V]) Clear() {
	m.init()
	m.tree.Clear(false)
}

func (m *Map[T, D, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Len returns the number of disjoint entries.
func (m *Map[T, D, V]) Len() int {
	m.init()
	return m.tree.Len()
}

// Span returns the smallest interval covering every entry. It fails with
// ErrEmpty if the map has no entries.
func (m *Map[T, D, V]) Span() (interval.Interval[T, D], error) {
	m.init()
	first, ok := m.tree.Min()
	if !ok {
		return interval.Interval[T, D]{}, ErrEmpty
	}
	last, _ := m.tree.Max()
	return m.toInterval(first.lo, last.hi), nil
}

// ToMap returns a snapshot of the entries keyed by their exact intervals.
func (m *Map[T, D, V]) ToMap() map[interval.Interval[T, D]]V {
	m.init()
	out := make(map[interval.Interval[T, D]]V, m.tree.Len())
	m.tree.Ascend(func(e *entry[T, V]) bool {
		out[m.toInterval(e.lo, e.hi)] = e.value
		return true
	})
	return out
}

// Entries returns a snapshot of the entries in interval order.
func (m *Map[T, D, V]) Entries() []Entry[T, D, V] {
	m.init()
	entries := make([]Entry[T, D, V], 0, m.tree.Len())
	m.tree.Ascend(func(e *entry[T, V]) bool {
		entries = append(entries, m.toEntry(e))
		return true
	})
	return entries
}

// All returns the entries in interval order. m must not be modified while
// the sequence is being iterated.
func (m *Map[T, D, V]) All() iter.Seq2[interval.Interval[T, D], V] {
	m.init()
	return func(yield func(interval.Interval[T, D], V) bool) {
		m.tree.Ascend(func(e *entry[T, V]) bool {
			return yield(m.toInterval(e.lo, e.hi), e.value)
		})
	}
}

// Iterate calls fn on the entries at or after start, in interval order,
// until it returns false. An entry containing start is clipped to begin at
// start.
func (m *Map[T, D, V]) Iterate(start T, fn func(Entry[T, D, V]) bool) {
	m.init()
	first := start
	if e, ok := m.find(start); ok {
		first = e.lo
	}

	m.tree.AscendGreaterOrEqual(&entry[T, V]{lo: first}, func(e *entry[T, V]) bool {
		if m.cmp(e.lo, start) < 0 {
			return fn(Entry[T, D, V]{Interval: m.toInterval(start, e.hi), Value: e.value})
		}
		return fn(m.toEntry(e))
	})
}

// NextKey returns the first point at or after p that is bound to a value.
func (m *Map[T, D, V]) NextKey(p T) (next T, ok bool) {
	m.init()
	if _, ok := m.find(p); ok {
		return p, true
	}
	e, ok := m.ceil(p)
	if !ok {
		return
	}
	return e.lo, true
}

// NextEmpty returns the first point at or after p that is not bound to a
// value.
func (m *Map[T, D, V]) NextEmpty(p T) T {
	m.init()
	e, ok := m.find(p)
	if !ok {
		return p
	}

	next := e.hi
	m.tree.AscendGreaterOrEqual(&entry[T, V]{lo: next}, func(e *entry[T, V]) bool {
		if m.cmp(e.lo, next) != 0 {
			return false
		}
		next = e.hi
		return true
	})
	return next
}
