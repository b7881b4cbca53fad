package advanced

import (
	"golang.org/x/exp/slices"
)

// Convex hull by Graham scan. The result runs counterclockwise, starting at the
// lowest point (leftmost among the lowest), and contains no collinear
// vertices. The input slice is not modified.
//
// Panics with ErrInsufficientInput for fewer than three points, and with
// ErrDegenerateGeometry when all points are collinear.
func ConvexHull(points []Point) []Point {
	if len(points) < 3 {
		fatalf(ErrInsufficientInput, "convex hull needs at least 3 points, got %d", len(points))
	}

	pivot := points[0]
	for _, p := range points[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	// Copies of the pivot have no angle, and would break the sort order.
	sorted := make([]Point, 0, len(points)-1)
	for _, p := range points {
		if !p.Equals(pivot) {
			sorted = append(sorted, p)
		}
	}

	// Angular order around the pivot, using only the sign of the cross product.
	// Every point is above or level with the pivot (and right of it when
	// level), so this is a strict weak ordering. Points at the same angle are
	// ordered nearest first.
	slices.SortFunc(sorted, func(a, b Point) int {
		o := Orientation(pivot, a, b)
		switch {
		case o < 0:
			return -1
		case o > 0:
			return 1
		}
		da, db := NewVector(pivot, a).LengthSquared(), NewVector(pivot, b).LengthSquared()
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})

	// Of the points sharing an angle, only the farthest can be on the hull.
	// Dropping the others keeps the first hull edge, which is pushed without
	// a turn check, free of collinear points.
	candidates := sorted[:0]
	for i, p := range sorted {
		if i+1 < len(sorted) && Orientation(pivot, p, sorted[i+1]) == 0 {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) < 2 {
		fatalf(ErrDegenerateGeometry, "convex hull of %d collinear points", len(points))
	}

	stack := make(PointStack, 0, len(candidates)+1)
	stack.Push(pivot)
	stack.Push(candidates[0])
	stack.Push(candidates[1])
	for _, p := range candidates[2:] {
		// Pop while the top two and p fail to make a strict left turn
		for stack.Len() >= 2 && Orientation(stack.NextToTop(), stack.Peek(), p) >= 0 {
			stack.Pop()
		}
		stack.Push(p)
	}
	return stack
}
