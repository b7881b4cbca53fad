package advanced

import (
	"math"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Subproblems at least this large solve their two halves concurrently. Below
// it, goroutine overhead outweighs the work.
const parallelClosestPairThreshold = 4096

// Points tagged with their rank in x order. Ranks let the y sorted view be
// split exactly like the x sorted one, even with duplicate coordinates.
type rankedPoint struct {
	Point
	rank int
}

// Closest pair of points by divide and conquer, in O(n log n). The input slice
// is not modified.
//
// Panics with ErrInsufficientInput for fewer than two points.
func ClosestPair(points []Point) PointPair {
	if len(points) < 2 {
		fatalf(ErrInsufficientInput, "closest pair needs at least 2 points, got %d", len(points))
	}

	byX := make([]rankedPoint, len(points))
	for i, p := range points {
		byX[i] = rankedPoint{Point: p}
	}
	slices.SortStableFunc(byX, func(a, b rankedPoint) int {
		return comparePoints(a.Point, b.Point)
	})
	for i := range byX {
		byX[i].rank = i
	}

	byY := slices.Clone(byX)
	slices.SortFunc(byY, func(a, b rankedPoint) int {
		switch {
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		}
		return a.rank - b.rank
	})

	return closestPairRecursive(byX, byY)
}

// Closest pair by checking every pair, in O(n^2). Ties keep the first pair in
// input order.
//
// Panics with ErrInsufficientInput for fewer than two points.
func ClosestPairBruteForce(points []Point) PointPair {
	if len(points) < 2 {
		fatalf(ErrInsufficientInput, "closest pair needs at least 2 points, got %d", len(points))
	}
	best := PointPair{Distance: math.Inf(1)}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := points[i].DistanceTo(points[j]); d < best.Distance {
				best = PointPair{A: points[i], B: points[j], Distance: d}
			}
		}
	}
	return best
}

// byX and byY hold the same points, sorted by x and by y respectively.
func closestPairRecursive(byX, byY []rankedPoint) PointPair {
	n := len(byX)
	if n <= 3 {
		best := PointPair{Distance: math.Inf(1)}
		for i := range byX {
			for j := i + 1; j < n; j++ {
				if d := byX[i].DistanceTo(byX[j].Point); d < best.Distance {
					best = PointPair{A: byX[i].Point, B: byX[j].Point, Distance: d}
				}
			}
		}
		return best
	}

	// The left half gets ceil(n/2) points. For n >= 4 both halves have at
	// least two, so each recursion has a pair to measure.
	mid := (n + 1) / 2
	splitRank := byX[mid].rank
	splitX := byX[mid-1].X

	leftY := make([]rankedPoint, 0, mid)
	rightY := make([]rankedPoint, 0, n-mid)
	for _, p := range byY {
		if p.rank < splitRank {
			leftY = append(leftY, p)
		} else {
			rightY = append(rightY, p)
		}
	}

	var left, right PointPair
	if n >= parallelClosestPairThreshold {
		var g errgroup.Group
		g.Go(func() error {
			left = closestPairRecursive(byX[:mid], leftY)
			return nil
		})
		g.Go(func() error {
			right = closestPairRecursive(byX[mid:], rightY)
			return nil
		})
		_ = g.Wait()
	} else {
		left = closestPairRecursive(byX[:mid], leftY)
		right = closestPairRecursive(byX[mid:], rightY)
	}

	best := left
	if right.Distance < best.Distance {
		best = right
	}

	// Only points within best.Distance of the split line can form a closer
	// pair across it. In y order, any such pair is at most 7 positions apart:
	// a d by 2d box holds at most 8 points that are pairwise d apart.
	strip := make([]rankedPoint, 0, n)
	for _, p := range byY {
		if math.Abs(p.X-splitX) < best.Distance {
			strip = append(strip, p)
		}
	}
	for i := range strip {
		for j := i + 1; j < len(strip) && j <= i+7; j++ {
			if d := strip[i].DistanceTo(strip[j].Point); d < best.Distance {
				best = PointPair{A: strip[i].Point, B: strip[j].Point, Distance: d}
			}
		}
	}
	return best
}

// Lexicographic comparison, x then y.
func comparePoints(a, b Point) int {
	switch {
	case a.LessXY(b):
		return -1
	case b.LessXY(a):
		return 1
	}
	return 0
}
