package grid

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrEmptyContainer is returned by first-element queries on a container
// with no entries.
var ErrEmptyContainer = errors.New("grid: container is empty")

// bucket is the inner index of a Map2D: the values stored under a single
// x key, addressed by y and iterated in first-insertion order.
type bucket[T any] struct {
	values map[float64]T
	order  []float64
}

// Map2D is an insertion-ordered mapping from (x, y) coordinate pairs to
// values of type T. It keeps a two-level index from x to y to value.
// Iteration walks x keys in the order they were first introduced, then y
// keys in their first-insertion order within each x bucket; re-setting an
// existing key never changes its position.
//
// Map2D is not safe for concurrent use, and its iterators reflect live
// structure: do not mutate the map while ranging over All, Keys or Values.
type Map2D[T any] struct {
	buckets map[float64]*bucket[T]
	order   []float64
	n       int
}

// NewMap2D creates an empty Map2D.
func NewMap2D[T any]() *Map2D[T] {
	return &Map2D[T]{buckets: make(map[float64]*bucket[T])}
}

// NewMap2DFrom creates a Map2D bulk-loaded from parallel coordinate and
// value slices. If the slices differ in length, or values is nil while
// coords is not, the bulk load is not applied and the result is empty.
//
// The resulting Len equals the raw input length even when duplicate
// coordinates overwrote earlier entries. This mirrors an eager bulk
// insert without duplicate detection and deliberately differs from the
// deduplicating JSON revive path; callers that need an exact count must
// deduplicate their input first.
func NewMap2DFrom[T any](coords []Vec, values []T) *Map2D[T] {
	m := NewMap2D[T]()
	if values == nil || len(coords) != len(values) {
		return m
	}
	for i, p := range coords {
		m.Set(p.X, p.Y, values[i])
	}
	m.n = len(coords)
	return m
}

// Len returns the number of stored keys.
func (m *Map2D[T]) Len() int {
	return m.n
}

// Set stores v at (x, y), overwriting any previous value. A new key is
// appended to the iteration order; an existing key keeps its position.
// Returns the map for chaining.
func (m *Map2D[T]) Set(x, y float64, v T) *Map2D[T] {
	if m.buckets == nil {
		m.buckets = make(map[float64]*bucket[T])
	}
	b, ok := m.buckets[x]
	if !ok {
		b = &bucket[T]{values: make(map[float64]T)}
		m.buckets[x] = b
		m.order = append(m.order, x)
	}
	if _, ok := b.values[y]; !ok {
		b.order = append(b.order, y)
		m.n++
	}
	b.values[y] = v
	return m
}

// SetAt stores v at p. See Set.
func (m *Map2D[T]) SetAt(p Vec, v T) *Map2D[T] {
	return m.Set(p.X, p.Y, v)
}

// Get returns the value stored at (x, y). The second return value is
// false when the key is absent, distinguishing a missing entry from a
// stored zero value.
func (m *Map2D[T]) Get(x, y float64) (T, bool) {
	if b, ok := m.buckets[x]; ok {
		v, ok := b.values[y]
		return v, ok
	}
	var zero T
	return zero, false
}

// GetAt returns the value stored at p. See Get.
func (m *Map2D[T]) GetAt(p Vec) (T, bool) {
	return m.Get(p.X, p.Y)
}

// Has reports whether a value is stored at (x, y).
func (m *Map2D[T]) Has(x, y float64) bool {
	b, ok := m.buckets[x]
	if !ok {
		return false
	}
	_, ok = b.values[y]
	return ok
}

// HasAt reports whether a value is stored at p.
func (m *Map2D[T]) HasAt(p Vec) bool {
	return m.Has(p.X, p.Y)
}

// Delete removes the entry at (x, y) and returns the map for chaining.
// The containing x bucket is removed when its last y key is deleted, so
// empty buckets never linger. Deleting an absent key is a no-op: Len
// only changes when the key actually existed.
func (m *Map2D[T]) Delete(x, y float64) *Map2D[T] {
	b, ok := m.buckets[x]
	if !ok {
		return m
	}
	if _, ok := b.values[y]; !ok {
		return m
	}
	delete(b.values, y)
	if i := slices.Index(b.order, y); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	m.n--
	if len(b.values) == 0 {
		delete(m.buckets, x)
		if i := slices.Index(m.order, x); i >= 0 {
			m.order = slices.Delete(m.order, i, i+1)
		}
	}
	return m
}

// DeleteAt removes the entry at p. See Delete.
func (m *Map2D[T]) DeleteAt(p Vec) *Map2D[T] {
	return m.Delete(p.X, p.Y)
}

// Clear removes all entries.
func (m *Map2D[T]) Clear() {
	m.buckets = make(map[float64]*bucket[T])
	m.order = nil
	m.n = 0
}

// FirstKey returns the earliest-inserted coordinate.
// Returns ErrEmptyContainer when the map is empty.
func (m *Map2D[T]) FirstKey() (Vec, error) {
	if m.n == 0 || len(m.order) == 0 {
		return Vec{}, fmt.Errorf("first key: %w", ErrEmptyContainer)
	}
	x := m.order[0]
	return V(x, m.buckets[x].order[0]), nil
}

// FirstValue returns the value at the earliest-inserted coordinate.
// Returns ErrEmptyContainer when the map is empty.
func (m *Map2D[T]) FirstValue() (T, error) {
	if m.n == 0 || len(m.order) == 0 {
		var zero T
		return zero, fmt.Errorf("first value: %w", ErrEmptyContainer)
	}
	x := m.order[0]
	b := m.buckets[x]
	return b.values[b.order[0]], nil
}

// All returns an iterator over (coordinate, value) pairs in insertion
// order. Each call produces a fresh traversal of the live structure.
func (m *Map2D[T]) All() iter.Seq2[Vec, T] {
	return func(yield func(Vec, T) bool) {
		for _, x := range m.order {
			b := m.buckets[x]
			for _, y := range b.order {
				if !yield(V(x, y), b.values[y]) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over coordinates in insertion order.
func (m *Map2D[T]) Keys() iter.Seq[Vec] {
	return func(yield func(Vec) bool) {
		for _, x := range m.order {
			for _, y := range m.buckets[x].order {
				if !yield(V(x, y)) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over values in insertion order.
func (m *Map2D[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range m.order {
			b := m.buckets[x]
			for _, y := range b.order {
				if !yield(b.values[y]) {
					return
				}
			}
		}
	}
}

// Filter returns a new Map2D holding only the entries for which pred is
// true, in their original relative order. The receiver is untouched.
func (m *Map2D[T]) Filter(pred func(v T, x, y float64) bool) *Map2D[T] {
	out := NewMap2D[T]()
	for p, v := range m.All() {
		if pred(v, p.X, p.Y) {
			out.Set(p.X, p.Y, v)
		}
	}
	return out
}

// Map returns a new Map2D with every value replaced by fn's result.
// Keys and traversal order are unchanged; the receiver is untouched.
func (m *Map2D[T]) Map(fn func(v T, x, y float64) T) *Map2D[T] {
	out := NewMap2D[T]()
	for p, v := range m.All() {
		out.Set(p.X, p.Y, fn(v, p.X, p.Y))
	}
	return out
}

// Equal reports whether a and b hold the same keys with equal values.
// Presence is checked explicitly, so stored zero values (0, "", false)
// compare correctly.
func Equal[T comparable](a, b *Map2D[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq. It reports true
// when both maps have the same Len and every key of a maps to a value in
// b for which eq is true.
func EqualFunc[T1, T2 any](a *Map2D[T1], b *Map2D[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for p, va := range a.All() {
		vb, ok := b.GetAt(p)
		if !ok || !eq(va, vb) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the map as an ordered array of [x, y, value]
// triples in traversal order. Values are encoded with their own JSON
// marshaling.
func (m *Map2D[T]) MarshalJSON() ([]byte, error) {
	triples := make([][3]any, 0, m.n)
	for p, v := range m.All() {
		triples = append(triples, [3]any{p.X, p.Y, v})
	}
	return json.Marshal(triples)
}

// UnmarshalJSON decodes an array of [x, y, value] triples, applying Set
// per triple. Unlike the bulk constructor, this path deduplicates:
// duplicate coordinates collapse to the last value and Len counts
// distinct keys.
func (m *Map2D[T]) UnmarshalJSON(data []byte) error {
	var triples [][]json.RawMessage
	if err := json.Unmarshal(data, &triples); err != nil {
		return fmt.Errorf("grid: invalid map: %w", err)
	}
	m.Clear()
	for i, tr := range triples {
		if len(tr) != 3 {
			return fmt.Errorf("grid: invalid map: triple %d has %d elements, want 3", i, len(tr))
		}
		var x, y float64
		if err := json.Unmarshal(tr[0], &x); err != nil {
			return fmt.Errorf("grid: invalid map: triple %d: %w", i, err)
		}
		if err := json.Unmarshal(tr[1], &y); err != nil {
			return fmt.Errorf("grid: invalid map: triple %d: %w", i, err)
		}
		var v T
		if err := json.Unmarshal(tr[2], &v); err != nil {
			return fmt.Errorf("grid: invalid map: triple %d: %w", i, err)
		}
		m.Set(x, y, v)
	}
	Logger().Debug("revived Map2D", "entries", m.n)
	return nil
}
