package advanced

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Points are plain values. Equality is exact field comparison, so Go's ==
// operator and Equals agree.
type Point struct {
	X float64
	Y float64
}

// A displacement in the plane. Arithmetic is delegated to gonum's r2 package.
type Vector r2.Vec

// Segments are directed from From to To, but intersection treats them as the
// undirected piece of line between the endpoints. Nothing in this package
// normalizes a caller's segment in place.
type Segment struct {
	From Point
	To   Point
}

// Axis aligned rectangle. Min holds the smallest coordinates on both axes.
type Rect struct {
	Min Point
	Max Point
}

// Result of a closest pair query.
type PointPair struct {
	A, B     Point
	Distance float64
}

type PointStack []Point

// Turn direction of three points, p1 -> p2 -> p3.
type Turn int

const (
	Collinear Turn = iota
	CounterClockwise
	Clockwise
)
