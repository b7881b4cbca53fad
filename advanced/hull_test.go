package advanced

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHull_SquareWithCenter(t *testing.T) {
	points := LoadPointFixture("square_with_center")
	original := append([]Point(nil), points...)

	hull := ConvexHull(points)
	assert.Equal(t, []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, hull)
	assert.Equal(t, original, points, "input is not modified")
	assertConvexCCW(t, hull)
}

func TestConvexHull_Star(t *testing.T) {
	hull := ConvexHull(LoadPointFixture("star"))
	assert.Equal(t, []Point{{0, -5}, {4.8, -1.5}, {2.9, 4}, {-2.9, 4}, {-4.8, -1.5}}, hull)
	assertConvexCCW(t, hull)
}

func TestConvexHull_CollinearAndDuplicatePoints(t *testing.T) {
	hull := ConvexHull(LoadPointFixture("collinear_edges"))
	assert.Equal(t, []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, hull)
}

func TestConvexHull_PivotTie(t *testing.T) {
	// Two lowest points; the leftmost one starts the hull
	hull := ConvexHull([]Point{{3, 0}, {1, 0}, {2, 2}})
	assert.Equal(t, []Point{{1, 0}, {3, 0}, {2, 2}}, hull)
}

func TestConvexHull_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		points := make([]Point, 10+rng.Intn(200))
		for i := range points {
			points[i] = Point{float64(rng.Intn(100)), float64(rng.Intn(100))}
		}
		hull := ConvexHull(points)
		assertConvexCCW(t, hull)

		// Every input point is inside or on the hull
		for _, p := range points {
			for i, a := range hull {
				b := hull[(i+1)%len(hull)]
				require.LessOrEqual(t, Orientation(a, b, p), 0.0, "point %v is outside hull edge %v-%v", p, a, b)
			}
		}
		assert.Equal(t, hull, ConvexHull(points), "deterministic")
	}
}

func TestConvexHull_Errors(t *testing.T) {
	err := recoverError(func() { ConvexHull([]Point{{0, 0}, {1, 1}}) })
	assert.True(t, errors.Is(err, ErrInsufficientInput))

	err = recoverError(func() { ConvexHull([]Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}) })
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))

	err = recoverError(func() { ConvexHull([]Point{{1, 1}, {1, 1}, {1, 1}}) })
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
}

// Helpers

// Every consecutive triple of hull vertices turns strictly left.
func assertConvexCCW(t *testing.T, hull []Point) {
	t.Helper()
	require.GreaterOrEqual(t, len(hull), 3)
	for i := range hull {
		a, b, c := hull[i], hull[(i+1)%len(hull)], hull[(i+2)%len(hull)]
		assert.Equal(t, CounterClockwise, TurnOf(a, b, c), "turn at %v", b)
	}
}

func recoverError(fn func()) (err error) {
	defer func() {
		err = HandlePanicRecover(recover())
	}()
	fn()
	return nil
}
