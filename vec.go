package grid

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Vec represents a 2D point or vector keyed into the containers.
// The zero value is the origin (0, 0). A Vec is never mutated after
// construction; all operations return new values.
type Vec struct {
	X, Y float64
}

// V is a convenience function to create a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Zero is the origin (0, 0).
var Zero = Vec{}

// Pow7 is the point (127, 127), 2^7-1 on both axes.
var Pow7 = Vec{X: 127, Y: 127}

// XY returns both components, for tuple-style access.
func (v Vec) XY() (x, y float64) {
	return v.X, v.Y
}

// Add returns the sum of two vectors.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec) Cross(w Vec) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Abs returns the component-wise absolute value.
func (v Vec) Abs() Vec {
	return Vec{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Eq reports whether both coordinates match exactly. Vec is a comparable
// struct, so == is equivalent; Eq exists for use as a method value.
func (v Vec) Eq(w Vec) bool {
	return v.X == w.X && v.Y == w.Y
}

// String returns the canonical "(x, y)" form.
func (v Vec) String() string {
	return "(" + fmtCoord(v.X) + ", " + fmtCoord(v.Y) + ")"
}

// fmtCoord formats a coordinate with the shortest decimal form that
// round-trips, never switching to exponent notation.
func fmtCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalJSON encodes the vector as a two-element [x, y] array.
func (v Vec) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.X, v.Y})
}

// UnmarshalJSON decodes a two-element [x, y] array. It is the left
// inverse of MarshalJSON: unmarshaling a marshaled Vec yields an equal Vec.
func (v *Vec) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("grid: invalid vec: %w", err)
	}
	v.X, v.Y = pair[0], pair[1]
	return nil
}

// betweenTolerance is the absolute cross-product tolerance used by Between
// to accept near-collinear points.
const betweenTolerance = 0.1

// Between reports whether c lies on the segment from a to b.
// Collinearity is checked with a cross product against betweenTolerance,
// then a dot-product range check rejects points that project outside the
// segment.
func Between(a, b, c Vec) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	if math.Abs(ab.Cross(ac)) > betweenTolerance {
		return false
	}
	d := ac.Dot(ab)
	return d >= 0 && d <= ab.Dot(ab)
}

// NearSet returns the points surrounding p, outer rings first.
// For each integer ring from round(|radius|) down to 1 it emits the 8
// surrounding points of that ring in NW, N, NE, W, E, SW, S, SE order.
// A radius that rounds to zero yields no points.
func NearSet(p Vec, radius float64) []Vec {
	r := int(math.Round(math.Abs(radius)))
	if r <= 0 {
		return nil
	}
	out := make([]Vec, 0, 8*r)
	for i := float64(r); i >= 1; i-- {
		out = append(out,
			V(p.X-i, p.Y-i), // NW
			V(p.X, p.Y-i),   // N
			V(p.X+i, p.Y-i), // NE
			V(p.X-i, p.Y),   // W
			V(p.X+i, p.Y),   // E
			V(p.X-i, p.Y+i), // SW
			V(p.X, p.Y+i),   // S
			V(p.X+i, p.Y+i), // SE
		)
	}
	return out
}

// Rounded rounds (x, y) to the integer corner of its quadrant relative to
// half the resolution. Each axis is floored at or past the resolution/2
// boundary and ceiled below it, so the four quadrants use a fixed
// floor/ceil combination per axis.
func Rounded(resolution, x, y float64) Vec {
	half := resolution / 2
	switch {
	case x >= half && y >= half:
		return V(math.Floor(x), math.Floor(y))
	case x < half && y >= half:
		return V(math.Ceil(x), math.Floor(y))
	case x >= half && y < half:
		return V(math.Floor(x), math.Ceil(y))
	default:
		return V(math.Ceil(x), math.Ceil(y))
	}
}

// inTriangleTolerance widens the triangle boundary slightly: barycentric
// coordinates as low as -0.1 still count as inside.
const inTriangleTolerance = -0.1

// InTriangle reports whether the point (x, y) is inside the triangle
// p0 p1 p2, using a signed-area barycentric test. A point on or within
// tolerance of the boundary counts as inside.
//
// A degenerate (zero-area) triangle divides by zero; the resulting
// NaN/Inf barycentric coordinates propagate and the result is undefined.
func InTriangle(x, y float64, p0, p1, p2 Vec) bool {
	area2 := -p1.Y*p2.X + p0.Y*(-p1.X+p2.X) + p0.X*(p1.Y-p2.Y) + p1.X*p2.Y
	s := (p0.Y*p2.X - p0.X*p2.Y + (p2.Y-p0.Y)*x + (p0.X-p2.X)*y) / area2
	t := (p0.X*p1.Y - p0.Y*p1.X + (p0.Y-p1.Y)*x + (p1.X-p0.X)*y) / area2
	return s >= inTriangleTolerance && t >= inTriangleTolerance && s+t <= 1
}
