// Package scene holds the state of an interactive geometry session: which
// algorithm is selected, the points clicked so far, and the outcome of the
// last evaluation. Nothing here is global; a viewer owns a Scene and forwards
// its input to it.
package scene

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/compgeom"
	"github.com/osuushi/compgeom/advanced"
)

type Algorithm int

const (
	// Classify the turn made by three clicks
	Direction Algorithm = iota
	// Test two segments, from four clicks, for intersection
	SegmentPair
	// Sweep the segments formed by consecutive pairs of clicks
	SegmentSet
	// Convex hull of the clicks
	Hull
	// Closest pair among the clicks
	Closest

	algorithmCount = int(Closest) + 1
)

func (a Algorithm) String() string {
	switch a {
	case Direction:
		return "Direction"
	case SegmentPair:
		return "Segment intersection"
	case SegmentSet:
		return "Any segment intersection"
	case Hull:
		return "Convex hull"
	case Closest:
		return "Closest pair"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

type Config struct {
	Algorithm Algorithm
	// Optional. Evaluations and sweep events are logged at debug level.
	Logger *zap.Logger
}

type Scene struct {
	Algorithm   Algorithm
	Clicks      []advanced.Point
	LastMessage string

	// Results of the last evaluation, for drawing. Only the fields belonging
	// to the current algorithm are set.
	Segments     []advanced.Segment
	Intersecting []int
	Hull         []advanced.Point
	Pair         *advanced.PointPair
	Turn         *advanced.Turn

	logger *zap.Logger
	sweep  *advanced.Sweep
}

func New(config Config) *Scene {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scene{
		Algorithm: config.Algorithm,
		logger:    logger,
		sweep:     advanced.NewSweep(logger.Named("sweep")),
	}
	s.clampAlgorithm()
	s.Reset()
	return s
}

func (s *Scene) Title() string {
	return fmt.Sprintf("Demo: %s (%d/%d)", s.Algorithm, int(s.Algorithm)+1, algorithmCount)
}

// Clear the clicks and results, keeping the selected algorithm.
func (s *Scene) Reset() {
	s.Clicks = nil
	s.clearResults()
	s.LastMessage = s.prompt()
}

func (s *Scene) NextAlgorithm() {
	s.Algorithm++
	s.clampAlgorithm()
	s.Reset()
}

func (s *Scene) PrevAlgorithm() {
	s.Algorithm--
	s.clampAlgorithm()
	s.Reset()
}

func (s *Scene) clampAlgorithm() {
	if s.Algorithm < 0 {
		s.Algorithm = 0
	}
	if int(s.Algorithm) >= algorithmCount {
		s.Algorithm = Algorithm(algorithmCount - 1)
	}
}

func (s *Scene) clearResults() {
	s.Segments = nil
	s.Intersecting = nil
	s.Hull = nil
	s.Pair = nil
	s.Turn = nil
}

// Record a click. Algorithms with a fixed input size evaluate as soon as they
// have it; a click after that starts over with the new point.
func (s *Scene) Click(p advanced.Point) error {
	if need := s.fixedInputSize(); need > 0 && len(s.Clicks) >= need {
		s.Reset()
	}
	s.Clicks = append(s.Clicks, p)
	s.logger.Debug("click", zap.Stringer("algorithm", s.Algorithm), zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Int("clicks", len(s.Clicks)))

	if need := s.fixedInputSize(); need > 0 {
		if len(s.Clicks) == need {
			return s.Evaluate()
		}
		s.LastMessage = s.prompt()
	}
	return nil
}

func (s *Scene) fixedInputSize() int {
	switch s.Algorithm {
	case Direction:
		return 3
	case SegmentPair:
		return 4
	}
	return 0
}

func (s *Scene) prompt() string {
	switch s.Algorithm {
	case Direction:
		return "Click 3 times"
	case SegmentPair:
		return "Click 4 times"
	case SegmentSet:
		return "Click pairs of segment endpoints"
	case Hull:
		return "Click at least 3 points"
	default:
		return "Click at least 2 points"
	}
}

// Run the selected algorithm on the current clicks. On error the message
// describes it and the results stay empty.
func (s *Scene) Evaluate() error {
	s.clearResults()
	err := s.evaluate()
	if err != nil {
		s.clearResults()
		s.LastMessage = fmt.Sprintf("%s: %v", s.Algorithm, err)
		s.logger.Debug("evaluation failed", zap.Stringer("algorithm", s.Algorithm), zap.Error(err))
		return err
	}
	s.logger.Debug("evaluated", zap.Stringer("algorithm", s.Algorithm), zap.String("message", s.LastMessage))
	return nil
}

func (s *Scene) evaluate() error {
	switch s.Algorithm {
	case Direction:
		if len(s.Clicks) != 3 {
			return compgeom.ErrInsufficientInput
		}
		turn, err := compgeom.TurnOf(s.Clicks[0], s.Clicks[1], s.Clicks[2])
		if err != nil {
			return err
		}
		s.Segments = []advanced.Segment{{From: s.Clicks[0], To: s.Clicks[1]}, {From: s.Clicks[1], To: s.Clicks[2]}}
		s.Turn = &turn
		s.LastMessage = "Direction " + turn.String()

	case SegmentPair:
		if len(s.Clicks) != 4 {
			return compgeom.ErrInsufficientInput
		}
		s.Segments = clicksToSegments(s.Clicks)
		hit, err := compgeom.Intersect(s.Segments[0], s.Segments[1])
		if err != nil {
			return err
		}
		if hit {
			s.Intersecting = []int{0, 1}
			s.LastMessage = "Segments intersect"
			if p, ok := s.Segments[0].Intersection(s.Segments[1]); ok {
				s.LastMessage = fmt.Sprintf("Segments intersect at (%g, %g)", p.X, p.Y)
			}
		} else {
			s.LastMessage = "Segments do not intersect"
		}

	case SegmentSet:
		s.Segments = clicksToSegments(s.Clicks)
		if err := compgeom.ValidateSegments(s.Segments); err != nil {
			return err
		}
		first, second, found := s.sweep.FindIntersection(s.Segments)
		if found {
			s.Intersecting = []int{first, second}
			s.LastMessage = fmt.Sprintf("Segments %d and %d intersect", first+1, second+1)
		} else {
			s.LastMessage = fmt.Sprintf("No intersection among %d segments", len(s.Segments))
		}

	case Hull:
		hull, err := compgeom.ConvexHull(s.Clicks)
		if err != nil {
			return err
		}
		s.Hull = hull
		s.LastMessage = fmt.Sprintf("Hull has %d of %d points", len(hull), len(s.Clicks))

	case Closest:
		pair, err := compgeom.ClosestPair(s.Clicks)
		if err != nil {
			return err
		}
		s.Pair = &pair
		s.LastMessage = fmt.Sprintf("Closest pair (%g, %g) - (%g, %g), distance %g", pair.A.X, pair.A.Y, pair.B.X, pair.B.Y, pair.Distance)

	default:
		return errors.Errorf("unknown algorithm %d", int(s.Algorithm))
	}
	return nil
}

// Consecutive pairs of clicks; a trailing odd click is ignored.
func clicksToSegments(clicks []advanced.Point) []advanced.Segment {
	segments := make([]advanced.Segment, 0, len(clicks)/2)
	for i := 0; i+1 < len(clicks); i += 2 {
		segments = append(segments, advanced.Segment{From: clicks[i], To: clicks[i+1]})
	}
	return segments
}
