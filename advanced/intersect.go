package advanced

// Whether two closed segments share at least one point.
//
// A proper crossing is detected by the endpoints of each segment lying
// strictly on opposite sides of the other segment's line. When an orientation
// is exactly zero, that endpoint is collinear with the other segment, and the
// segments touch iff the endpoint falls inside the other segment's bounding
// box.
//
// Zero is compared exactly. Nearly collinear configurations can therefore be
// misjudged by floating point rounding; this is a known precision limitation of
// the simple predicates, not something to paper over with an epsilon.
func Intersect(s1, s2 Segment) bool {
	d1 := Orientation(s2.From, s2.To, s1.From)
	d2 := Orientation(s2.From, s2.To, s1.To)
	d3 := Orientation(s1.From, s1.To, s2.From)
	d4 := Orientation(s1.From, s1.To, s2.To)

	if oppositeSigns(d1, d2) && oppositeSigns(d3, d4) {
		return true
	}

	switch {
	case d1 == 0 && OnSegmentBoundingBox(s2.From, s2.To, s1.From):
		return true
	case d2 == 0 && OnSegmentBoundingBox(s2.From, s2.To, s1.To):
		return true
	case d3 == 0 && OnSegmentBoundingBox(s1.From, s1.To, s2.From):
		return true
	case d4 == 0 && OnSegmentBoundingBox(s1.From, s1.To, s2.To):
		return true
	}
	return false
}

func oppositeSigns(a, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}
