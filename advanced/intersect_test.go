package advanced

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	testCases := []struct {
		name     string
		s1, s2   Segment
		expected bool
	}{
		{"proper crossing", Segment{Point{0, 0}, Point{2, 2}}, Segment{Point{0, 2}, Point{2, 0}}, true},
		{"shared endpoint", Segment{Point{0, 0}, Point{2, 0}}, Segment{Point{2, 0}, Point{3, 1}}, true},
		{"disjoint parallel", Segment{Point{0, 0}, Point{1, 0}}, Segment{Point{0, 1}, Point{1, 1}}, false},
		{"T junction", Segment{Point{0, 0}, Point{4, 0}}, Segment{Point{2, 0}, Point{2, 3}}, true},
		{"collinear overlap", Segment{Point{0, 0}, Point{3, 0}}, Segment{Point{2, 0}, Point{5, 0}}, true},
		{"collinear containment", Segment{Point{0, 0}, Point{6, 6}}, Segment{Point{2, 2}, Point{3, 3}}, true},
		{"collinear apart", Segment{Point{0, 0}, Point{1, 0}}, Segment{Point{2, 0}, Point{3, 0}}, false},
		{"line crosses but segment stops short", Segment{Point{0, 0}, Point{1, 1}}, Segment{Point{3, 0}, Point{4, -1}}, false},
		{"endpoint on interior", Segment{Point{0, 0}, Point{4, 4}}, Segment{Point{2, 2}, Point{5, 0}}, true},
		{"degenerate point on segment", Segment{Point{1, 1}, Point{1, 1}}, Segment{Point{0, 0}, Point{2, 2}}, true},
		{"degenerate point off segment", Segment{Point{1, 2}, Point{1, 2}}, Segment{Point{0, 0}, Point{2, 2}}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Intersect(tc.s1, tc.s2))
			assert.Equal(t, tc.expected, Intersect(tc.s2, tc.s1), "intersection is symmetric")
			reversed := Segment{tc.s1.To, tc.s1.From}
			assert.Equal(t, tc.expected, Intersect(reversed, tc.s2), "direction doesn't matter")
		})
	}
}

func TestIntersectSymmetryRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randomSegment := func() Segment {
		// Small integer grid, so plenty of collinear and touching cases show up
		return Segment{
			Point{float64(rng.Intn(6)), float64(rng.Intn(6))},
			Point{float64(rng.Intn(6)), float64(rng.Intn(6))},
		}
	}
	for i := 0; i < 2000; i++ {
		s1, s2 := randomSegment(), randomSegment()
		assert.Equal(t, Intersect(s1, s2), Intersect(s2, s1), "%v %v", s1, s2)
		assert.Equal(t, Intersect(s1, s2), Intersect(s1, s2), "deterministic")
	}
}
