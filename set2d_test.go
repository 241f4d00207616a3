package grid

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

func TestSet2D_AddHasDelete(t *testing.T) {
	s := NewSet2D()
	s.AddXY(1, 2)

	if !s.HasXY(1, 2) {
		t.Error("HasXY(1, 2) = false, want true")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	s.Delete(V(1, 2))
	if s.Len() != 0 {
		t.Errorf("Len() after delete = %d, want 0", s.Len())
	}
	if s.HasXY(1, 2) {
		t.Error("HasXY(1, 2) after delete = true, want false")
	}
}

func TestSet2D_AddIsIdempotentOnLen(t *testing.T) {
	s := NewSet2D()
	s.Add(V(1, 1)).AddXY(1, 1).Add(V(1, 1))
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSet2D_Chaining(t *testing.T) {
	s := NewSet2D().AddXY(1, 1).Add(V(2, 2)).Delete(V(1, 1))
	if s.Len() != 1 || !s.HasXY(2, 2) {
		t.Errorf("chained set has Len %d, HasXY(2,2) %v", s.Len(), s.HasXY(2, 2))
	}
}

func TestSet2D_InsertionOrder(t *testing.T) {
	s := NewSet2D().AddXY(123, 321).AddXY(0, 0).AddXY(1, 1)

	want := []Vec{V(123, 321), V(0, 0), V(1, 1)}
	if got := s.ToSlice(); !slices.Equal(got, want) {
		t.Errorf("ToSlice() = %v, want %v", got, want)
	}
}

func TestSet2D_BulkConstructor(t *testing.T) {
	coords := []Vec{V(1, 1), V(2, 2)}
	s := NewSet2DFrom(coords)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	for _, p := range coords {
		if !s.Has(p) {
			t.Errorf("Has(%v) = false, want true", p)
		}
	}

	// The map's bulk path is inherited, including its raw-length count
	// for duplicate coordinates.
	dup := NewSet2DFrom([]Vec{V(1, 1), V(1, 1)})
	if dup.Len() != 2 {
		t.Errorf("Len() with duplicate input = %d, want 2 (raw input length)", dup.Len())
	}
}

func TestSet2D_First(t *testing.T) {
	s := NewSet2D()
	if _, err := s.First(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("First() on empty set error = %v, want ErrEmptyContainer", err)
	}

	s.AddXY(9, 9).AddXY(1, 1)
	got, err := s.First()
	if err != nil {
		t.Fatalf("First() error: %v", err)
	}
	if got != V(9, 9) {
		t.Errorf("First() = %v, want (9, 9)", got)
	}
}

func TestSet2D_Dup(t *testing.T) {
	s := NewSet2D().AddXY(1, 1).AddXY(2, 2)
	d := s.Dup()

	if !s.Equal(d) {
		t.Error("Dup() not equal to original")
	}
	d.AddXY(3, 3)
	if s.HasXY(3, 3) {
		t.Error("mutating the dup affected the original")
	}
}

func TestSet2D_Append(t *testing.T) {
	a := NewSet2D().AddXY(1, 1).AddXY(2, 2)
	b := NewSet2D().AddXY(2, 2).AddXY(3, 3)

	got := a.Append(b)
	if got != a {
		t.Error("Append did not return the receiver")
	}
	if a.Len() != 3 {
		t.Errorf("Len() after append = %d, want 3", a.Len())
	}
	want := []Vec{V(1, 1), V(2, 2), V(3, 3)}
	if keys := a.ToSlice(); !slices.Equal(keys, want) {
		t.Errorf("elements after append = %v, want %v", keys, want)
	}
}

func TestSet2D_Equal(t *testing.T) {
	a := NewSet2D().AddXY(1, 1).AddXY(2, 2)
	b := NewSet2D().AddXY(2, 2).AddXY(1, 1) // different order

	if !a.Equal(b) {
		t.Error("Equal with same coordinates = false, want true")
	}
	if a.Equal(NewSet2D().AddXY(1, 1)) {
		t.Error("Equal with different sizes = true, want false")
	}
	if a.Equal(NewSet2D().AddXY(1, 1).AddXY(9, 9)) {
		t.Error("Equal with different coordinates = true, want false")
	}
}

func TestSet2D_FilterMap(t *testing.T) {
	s := NewSet2D().AddXY(1, 1).AddXY(2, 2).AddXY(3, 3)

	odd := s.Filter(func(v Vec, x, y float64) bool { return int(x)%2 == 1 })
	want := []Vec{V(1, 1), V(3, 3)}
	if got := odd.ToSlice(); !slices.Equal(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}

	shifted := s.Map(func(v Vec, x, y float64) Vec { return V(x+10, y) })
	wantShift := []Vec{V(11, 1), V(12, 2), V(13, 3)}
	if got := shifted.ToSlice(); !slices.Equal(got, wantShift) {
		t.Errorf("Map = %v, want %v", got, wantShift)
	}
	if s.Len() != 3 {
		t.Errorf("original Len() = %d, want 3 (untouched)", s.Len())
	}
}

func TestSet2D_Clear(t *testing.T) {
	s := NewSet2D().AddXY(1, 1).AddXY(2, 2)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
}

func TestSet2D_Iterators(t *testing.T) {
	s := NewSet2D().AddXY(1, 1).AddXY(2, 2)

	var keys, vals []Vec
	for k := range s.Keys() {
		keys = append(keys, k)
	}
	for v := range s.Values() {
		vals = append(vals, v)
	}
	// For a set, stored elements are the coordinates themselves.
	if !slices.Equal(keys, vals) {
		t.Errorf("Keys() = %v and Values() = %v, want identical", keys, vals)
	}

	var n int
	for k, v := range s.All() {
		if k != v {
			t.Errorf("All() yielded key %v with element %v", k, v)
		}
		n++
	}
	if n != 2 {
		t.Errorf("All() yielded %d pairs, want 2", n)
	}
}

func TestSet2D_JSONRoundTrip(t *testing.T) {
	s := NewSet2D().AddXY(1, 2).AddXY(-3, 4)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `[[1,2],[-3,4]]`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	got := NewSet2D()
	if err := json.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !s.Equal(got) {
		t.Error("round-tripped set not equal to original")
	}
	if !slices.Equal(got.ToSlice(), s.ToSlice()) {
		t.Error("round-tripped element order differs from original")
	}
}

func TestSet2D_UnmarshalIntoZeroValue(t *testing.T) {
	var s Set2D
	if err := json.Unmarshal([]byte(`[[5,6]]`), &s); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !s.HasXY(5, 6) || s.Len() != 1 {
		t.Errorf("revived set: HasXY(5,6)=%v Len=%d, want true, 1", s.HasXY(5, 6), s.Len())
	}
}

func TestSet2D_UnmarshalInvalid(t *testing.T) {
	s := NewSet2D()
	if err := json.Unmarshal([]byte(`[[1,"a"]]`), s); err == nil {
		t.Error("Unmarshal of non-numeric pair succeeded, want error")
	}
}
