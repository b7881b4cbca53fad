package advanced

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/osuushi/compgeom/dbg"
)

// Sweep line test for whether any pair in a set of segments intersects.
//
// The sweep moves left to right over segment endpoints. Segments crossing the
// sweep line are kept in an active set ordered by the y coordinate of their
// left endpoint, and only segments adjacent in that order are ever tested
// against each other. This answers "is there any intersection" for the usual
// textbook configurations, but the ordering key is an approximation of the
// true vertical order at the sweep line. Segments that cross each other
// between events can be misordered, so this is not a full Bentley-Ottmann
// intersection finder and it never enumerates intersection points.
//
// The caller's segments are never modified. Normalized copies live in an
// append-only arena, and the active set only holds indices into it, which are
// also the caller's indices.
type Sweep struct {
	logger *zap.Logger
}

// A Sweep that traces events to the logger at debug level. A nil logger
// disables tracing.
func NewSweep(logger *zap.Logger) *Sweep {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sweep{logger: logger}
}

var defaultSweep = NewSweep(nil)

func AnySegmentIntersect(segments []Segment) bool {
	return defaultSweep.AnyIntersect(segments)
}

func (s *Sweep) AnyIntersect(segments []Segment) bool {
	_, _, found := s.FindIntersection(segments)
	return found
}

type sweepEvent struct {
	point   Point
	segment int
	isStart bool
}

// Events are ordered by x. At equal x, starts come before ends so that
// segments touching at that x are active together; remaining ties are broken
// by y and then by segment index to keep the order deterministic.
func compareEvents(a, b sweepEvent) int {
	switch {
	case a.point.X < b.point.X:
		return -1
	case a.point.X > b.point.X:
		return 1
	case a.isStart != b.isStart:
		if a.isStart {
			return -1
		}
		return 1
	case a.point.Y < b.point.Y:
		return -1
	case a.point.Y > b.point.Y:
		return 1
	}
	return a.segment - b.segment
}

// Ordered set of arena indices, keyed by the y of each segment's left endpoint.
// Keys never change while a segment is active, so a sorted slice with binary
// search stays exact.
type activeSet struct {
	arena   []Segment
	indices []int
}

func (set *activeSet) compare(a, b int) int {
	ya, yb := set.arena[a].From.Y, set.arena[b].From.Y
	switch {
	case ya < yb:
		return -1
	case ya > yb:
		return 1
	}
	return a - b
}

func (set *activeSet) insert(segment int) int {
	pos, _ := slices.BinarySearchFunc(set.indices, segment, set.compare)
	set.indices = slices.Insert(set.indices, pos, segment)
	return pos
}

func (set *activeSet) position(segment int) int {
	pos, found := slices.BinarySearchFunc(set.indices, segment, set.compare)
	if !found {
		panic("sweep: segment is not in the active set")
	}
	return pos
}

func (set *activeSet) remove(pos int) {
	set.indices = slices.Delete(set.indices, pos, pos+1)
}

// Neighbors of the segment at pos; -1 when there is none.
func (set *activeSet) neighbors(pos int) (below, above int) {
	below, above = -1, -1
	if pos > 0 {
		below = set.indices[pos-1]
	}
	if pos+1 < len(set.indices) {
		above = set.indices[pos+1]
	}
	return below, above
}

// Run the sweep and report the first pair of segments found to intersect, as
// indices into segments with first < second.
func (s *Sweep) FindIntersection(segments []Segment) (first, second int, found bool) {
	arena := make([]Segment, len(segments))
	events := make([]sweepEvent, 0, 2*len(segments))
	for i, segment := range segments {
		arena[i] = segment.Normalized()
		events = append(events,
			sweepEvent{point: arena[i].From, segment: i, isStart: true},
			sweepEvent{point: arena[i].To, segment: i, isStart: false},
		)
	}
	slices.SortFunc(events, compareEvents)

	active := &activeSet{arena: arena}
	report := func(a, b int) (int, int, bool) {
		if a > b {
			a, b = b, a
		}
		s.trace("intersection", arena, a, zap.String("other", s.name(b)))
		return a, b, true
	}

	for _, event := range events {
		if event.isStart {
			pos := active.insert(event.segment)
			s.trace("start", arena, event.segment, zap.Int("active", len(active.indices)))
			below, above := active.neighbors(pos)
			if above >= 0 && Intersect(arena[event.segment], arena[above]) {
				return report(event.segment, above)
			}
			if below >= 0 && Intersect(arena[event.segment], arena[below]) {
				return report(event.segment, below)
			}
		} else {
			pos := active.position(event.segment)
			s.trace("end", arena, event.segment, zap.Int("active", len(active.indices)))
			below, above := active.neighbors(pos)
			if above >= 0 && below >= 0 && Intersect(arena[above], arena[below]) {
				return report(below, above)
			}
			active.remove(pos)
		}
	}
	return -1, -1, false
}

func (s *Sweep) trace(msg string, arena []Segment, segment int, fields ...zap.Field) {
	if ce := s.logger.Check(zap.DebugLevel, "sweep "+msg); ce != nil {
		fields = append(fields,
			zap.String("segment", s.name(segment)),
			zap.Int("index", segment),
			zap.Float64("x", arena[segment].From.X),
			zap.Float64("y", arena[segment].From.Y),
		)
		ce.Write(fields...)
	}
}

// Names are keyed by caller index, so the same index gets the same name in
// every sweep and no arena outlives its sweep.
type segmentName int

func (s *Sweep) name(segment int) string {
	if !s.logger.Core().Enabled(zap.DebugLevel) {
		return ""
	}
	return dbg.Name(segmentName(segment))
}
