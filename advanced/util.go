package advanced

import (
	"math"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/spatial/r2"
)

// Tolerance used by the collinearity checks that validate a computed
// intersection point. The orientation predicates themselves compare against
// exact zero.
const Tolerance = 1e-15

func IsCloseToZero(v float64) bool {
	return math.Abs(v) < Tolerance
}

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) DistanceTo(other Point) float64 {
	return NewVector(p, other).Length()
}

// Lexicographic order on x, then y. Used to pick the "from" end of a
// normalized segment and to sort points deterministically.
func (p Point) LessXY(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func NewVector(from, to Point) Vector {
	return Vector{X: to.X - from.X, Y: to.Y - from.Y}
}

func (v Vector) Add(other Vector) Vector {
	return Vector(r2.Add(r2.Vec(v), r2.Vec(other)))
}

func (v Vector) Sub(other Vector) Vector {
	return Vector(r2.Sub(r2.Vec(v), r2.Vec(other)))
}

func (v Vector) Scale(ratio float64) Vector {
	return Vector(r2.Scale(ratio, r2.Vec(v)))
}

// Unit vector in the same direction. The zero vector has no direction and
// yields NaN components.
func (v Vector) Unit() Vector {
	return Vector(r2.Unit(r2.Vec(v)))
}

// The z component of the 3D cross product, v.X*other.Y - other.X*v.Y.
func (v Vector) Cross(other Vector) float64 {
	return r2.Cross(r2.Vec(v), r2.Vec(other))
}

func (v Vector) Length() float64 {
	return r2.Norm(r2.Vec(v))
}

func (v Vector) LengthSquared() float64 {
	return r2.Norm2(r2.Vec(v))
}

// Signed area spanned by p1, p2 and p3, computed as (p3-p1) x (p2-p1). Zero
// means the points are collinear. A negative value means p1 -> p2 -> p3 turns
// left (counterclockwise), a positive one that it turns right.
func Orientation(p1, p2, p3 Point) float64 {
	return NewVector(p1, p3).Cross(NewVector(p1, p2))
}

// Classify the turn p1 -> p2 -> p3. Collinear only on an exact zero.
func TurnOf(p1, p2, p3 Point) Turn {
	o := Orientation(p1, p2, p3)
	switch {
	case o < 0:
		return CounterClockwise
	case o > 0:
		return Clockwise
	default:
		return Collinear
	}
}

func (t Turn) String() string {
	switch t {
	case CounterClockwise:
		return "counterclockwise"
	case Clockwise:
		return "clockwise"
	default:
		return "none"
	}
}

// Colored version of String for terminal output.
func (t Turn) Colored() aurora.Value {
	switch t {
	case CounterClockwise:
		return aurora.Cyan(t.String())
	case Clockwise:
		return aurora.Magenta(t.String())
	default:
		return aurora.Yellow(t.String())
	}
}

// Whether p lies in the closed axis aligned bounding box of the segment a-b.
// This is only meaningful as an overlap test once p is known to be collinear
// with a-b.
func OnSegmentBoundingBox(a, b, p Point) bool {
	return NewRect(a, b).Contains(p)
}

func NewRect(a, b Point) Rect {
	return Rect{
		Min: Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop the top point. Popping an empty stack is a programming error.
func (s *PointStack) Pop() Point {
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() Point {
	return (*s)[len(*s)-1]
}

// The point just below the top of the stack.
func (s *PointStack) NextToTop() Point {
	return (*s)[len(*s)-2]
}

func (s *PointStack) Len() int {
	return len(*s)
}
