package advanced

// Copy of the segment with the lexicographically smaller endpoint (smaller x,
// then smaller y) as From.
func (s Segment) Normalized() Segment {
	if s.To.LessXY(s.From) {
		return Segment{From: s.To, To: s.From}
	}
	return s
}

func (s Segment) Equals(other Segment) bool {
	return s.From.Equals(other.From) && s.To.Equals(other.To)
}

func (s Segment) Bounds() Rect {
	return NewRect(s.From, s.To)
}

func (s Segment) Vector() Vector {
	return NewVector(s.From, s.To)
}

func (s Segment) IsVertical() bool {
	return s.From.X == s.To.X
}

// Collinearity with a small tolerance, for points that came out of floating
// point arithmetic.
func (s Segment) IsCollinear(p Point) bool {
	return IsCloseToZero(s.Vector().Cross(NewVector(s.From, p)))
}

// Whether p lies on the segment. The extent check runs along x, or along y for
// vertical segments.
func (s Segment) Contains(p Point) bool {
	if !s.IsCollinear(p) {
		return false
	}
	if s.IsVertical() {
		bounds := s.Bounds()
		return bounds.Min.Y <= p.Y && p.Y <= bounds.Max.Y
	}
	bounds := s.Bounds()
	return bounds.Min.X <= p.X && p.X <= bounds.Max.X
}

// Intersection point of the infinite lines through both segments. Returns
// false for parallel (or collinear) lines.
func (s Segment) LineIntersection(other Segment) (Point, bool) {
	// Solve a1*x + b1*y = c1 and a2*x + b2*y = c2 by Cramer's rule.
	a1 := s.To.Y - s.From.Y
	b1 := s.From.X - s.To.X
	c1 := a1*s.From.X + b1*s.From.Y

	a2 := other.To.Y - other.From.Y
	b2 := other.From.X - other.To.X
	c2 := a2*other.From.X + b2*other.From.Y

	det := a1*b2 - a2*b1
	if IsCloseToZero(det) {
		return Point{}, false
	}
	return Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}, true
}

// Intersection point of the two segments, if their lines cross at a point that
// lies on both. Overlapping collinear segments have no single intersection
// point and return false; use Intersect to detect them.
//
// The point is located parametrically, as From + t*(To-From) on each segment,
// and t must fall in [0, 1] up to Tolerance. The point is computed on s, so an
// axis aligned s keeps its fixed coordinate exactly.
func (s Segment) Intersection(other Segment) (Point, bool) {
	r, q := s.Vector(), other.Vector()
	denom := r.Cross(q)
	if IsCloseToZero(denom) {
		return Point{}, false
	}
	w := NewVector(s.From, other.From)
	t := w.Cross(q) / denom
	u := w.Cross(r) / denom
	if !inUnitInterval(t) || !inUnitInterval(u) {
		return Point{}, false
	}
	return Point{X: s.From.X + t*r.X, Y: s.From.Y + t*r.Y}, true
}

func inUnitInterval(t float64) bool {
	return t >= -Tolerance && t <= 1+Tolerance
}
