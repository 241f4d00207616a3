package grid

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Set2D is an insertion-ordered set of coordinates. It is a thin facade
// over a Map2D whose stored value at (x, y) is the element itself, so it
// inherits the map's ordering and sizing behavior exactly.
//
// Like Map2D, a Set2D is not safe for concurrent use and its iterators
// reflect live structure.
type Set2D struct {
	m *Map2D[Vec]
}

// NewSet2D creates an empty Set2D.
func NewSet2D() *Set2D {
	return &Set2D{m: NewMap2D[Vec]()}
}

// NewSet2DFrom creates a Set2D bulk-loaded from coords, via the Map2D
// bulk constructor. The non-deduplicating Len behavior of that path
// applies here on construction only; see NewMap2DFrom.
func NewSet2DFrom(coords []Vec) *Set2D {
	return &Set2D{m: NewMap2DFrom(coords, coords)}
}

// Len returns the number of elements.
func (s *Set2D) Len() int {
	return s.m.Len()
}

// Add inserts p, storing the passed value as the element. Returns the
// set for chaining.
func (s *Set2D) Add(p Vec) *Set2D {
	s.m.SetAt(p, p)
	return s
}

// AddXY inserts the coordinate (x, y), synthesizing a fresh Vec as the
// stored element. When AddXY and Add overlap on a key, the stored element
// is whichever was set last. Returns the set for chaining.
func (s *Set2D) AddXY(x, y float64) *Set2D {
	s.m.Set(x, y, V(x, y))
	return s
}

// Has reports whether p's coordinate is in the set.
func (s *Set2D) Has(p Vec) bool {
	return s.m.HasAt(p)
}

// HasXY reports whether (x, y) is in the set.
func (s *Set2D) HasXY(x, y float64) bool {
	return s.m.Has(x, y)
}

// Delete removes p's coordinate. Returns the set for chaining.
func (s *Set2D) Delete(p Vec) *Set2D {
	s.m.DeleteAt(p)
	return s
}

// Clear removes all elements.
func (s *Set2D) Clear() {
	s.m.Clear()
}

// Dup returns a new Set2D containing the same elements, stored values
// preserved.
func (s *Set2D) Dup() *Set2D {
	out := NewSet2D()
	for p, v := range s.m.All() {
		out.m.SetAt(p, v)
	}
	return out
}

// Append merges all of other's elements into s in place. Coordinates
// already present are overwritten with other's stored element. Returns s.
func (s *Set2D) Append(other *Set2D) *Set2D {
	for p, v := range other.m.All() {
		s.m.SetAt(p, v)
	}
	return s
}

// All returns an iterator over (coordinate, element) pairs in insertion
// order.
func (s *Set2D) All() iter.Seq2[Vec, Vec] {
	return s.m.All()
}

// Keys returns an iterator over coordinates in insertion order.
func (s *Set2D) Keys() iter.Seq[Vec] {
	return s.m.Keys()
}

// Values returns an iterator over stored elements in insertion order.
func (s *Set2D) Values() iter.Seq[Vec] {
	return s.m.Values()
}

// ToSlice materializes Values into a slice.
func (s *Set2D) ToSlice() []Vec {
	out := make([]Vec, 0, s.Len())
	for v := range s.m.Values() {
		out = append(out, v)
	}
	return out
}

// First returns the earliest-inserted coordinate.
// Returns ErrEmptyContainer when the set is empty.
func (s *Set2D) First() (Vec, error) {
	return s.m.FirstKey()
}

// Equal reports whether s and other contain the same coordinates.
// Equality is structural on coordinates only; stored elements are not
// compared.
func (s *Set2D) Equal(other *Set2D) bool {
	if s.Len() != other.Len() {
		return false
	}
	for p := range s.m.Keys() {
		if !other.m.HasAt(p) {
			return false
		}
	}
	return true
}

// Filter returns a new Set2D holding only the elements for which pred is
// true, stored values preserved, in their original relative order.
func (s *Set2D) Filter(pred func(v Vec, x, y float64) bool) *Set2D {
	out := NewSet2D()
	for p, v := range s.m.All() {
		if pred(v, p.X, p.Y) {
			out.m.SetAt(p, v)
		}
	}
	return out
}

// Map returns a new Set2D where each element is replaced by fn's result,
// which determines both the new coordinate and the stored element.
func (s *Set2D) Map(fn func(v Vec, x, y float64) Vec) *Set2D {
	out := NewSet2D()
	for p, v := range s.m.All() {
		out.Add(fn(v, p.X, p.Y))
	}
	return out
}

// MarshalJSON encodes the set as an ordered array of [x, y] coordinate
// pairs. Stored elements beyond the coordinate are discarded.
func (s *Set2D) MarshalJSON() ([]byte, error) {
	pairs := make([][2]float64, 0, s.Len())
	for p := range s.m.Keys() {
		pairs = append(pairs, [2]float64{p.X, p.Y})
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON decodes an array of [x, y] pairs, applying AddXY per
// pair, so revived elements are always plain coordinates.
func (s *Set2D) UnmarshalJSON(data []byte) error {
	var pairs [][2]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("grid: invalid set: %w", err)
	}
	if s.m == nil {
		s.m = NewMap2D[Vec]()
	} else {
		s.m.Clear()
	}
	for _, pr := range pairs {
		s.AddXY(pr[0], pr[1])
	}
	Logger().Debug("revived Set2D", "elements", s.Len())
	return nil
}
