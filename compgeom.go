// A small 2D computational geometry package for Go.
//
// It answers three kinds of question about plain float64 geometry: whether
// segments intersect (one pair, or any pair in a set), what the convex hull of
// a point set is, and which two points of a set are closest together.
//
// Predicates use ordinary floating point arithmetic with exact comparisons
// against zero. They are simple, not robust: nearly degenerate inputs can be
// misclassified by rounding.
//
// The functions here validate their input and return errors. The advanced
// package exposes the same algorithms without validation, panicking on
// precondition failures.
package compgeom

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/osuushi/compgeom/advanced"
)

type Point = advanced.Point
type Vector = advanced.Vector
type Segment = advanced.Segment
type PointPair = advanced.PointPair
type Turn = advanced.Turn

var (
	ErrInsufficientInput  = advanced.ErrInsufficientInput
	ErrDegenerateGeometry = advanced.ErrDegenerateGeometry
	ErrNonFinite          = errors.New("non-finite coordinate")
)

// Whether two closed segments share a point.
func Intersect(a, b Segment) (bool, error) {
	if err := ValidateSegments([]Segment{a, b}); err != nil {
		return false, err
	}
	return advanced.Intersect(a, b), nil
}

// Whether any two segments in the set intersect, by a left to right sweep that
// only compares segments adjacent in its active order. Fewer than two segments
// never intersect.
func AnySegmentIntersect(segments []Segment) (bool, error) {
	if err := ValidateSegments(segments); err != nil {
		return false, err
	}
	return advanced.AnySegmentIntersect(segments), nil
}

// Convex hull in counterclockwise order. Needs at least three points that are
// not all collinear.
func ConvexHull(points []Point) (result []Point, err error) {
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.ConvexHull(points), nil
}

// The two closest points of the set and their distance. Needs at least two
// points.
func ClosestPair(points []Point) (result PointPair, err error) {
	if err := ValidatePoints(points); err != nil {
		return PointPair{}, err
	}
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = PointPair{}
			err = recoveredErr
		}
	}()
	return advanced.ClosestPair(points), nil
}

// Turn direction of p1 -> p2 -> p3.
func TurnOf(p1, p2, p3 Point) (Turn, error) {
	if err := ValidatePoints([]Point{p1, p2, p3}); err != nil {
		return advanced.Collinear, err
	}
	return advanced.TurnOf(p1, p2, p3), nil
}

// Every coordinate must be finite. All offending points are reported.
func ValidatePoints(points []Point) error {
	var err error
	for i, p := range points {
		if !isFinite(p) {
			err = multierr.Append(err, errors.Wrapf(ErrNonFinite, "point %d (%v, %v)", i, p.X, p.Y))
		}
	}
	return err
}

func ValidateSegments(segments []Segment) error {
	var err error
	for i, s := range segments {
		if !isFinite(s.From) || !isFinite(s.To) {
			err = multierr.Append(err, errors.Wrapf(ErrNonFinite, "segment %d", i))
		}
	}
	return err
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
