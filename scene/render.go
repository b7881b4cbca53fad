package scene

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/osuushi/compgeom/advanced"
)

// Padding in pixels around the scene's bounding box
const renderPadding = 40

// Largest side of the drawn area in pixels, padding excluded. Scenes that
// would come out larger are scaled down to fit.
const MaxRenderSize = 4096

var ErrNothingToRender = errors.New("nothing to render")

type RenderOptions struct {
	// Pixels per unit
	Scale float64
	// Radius of click markers in pixels
	PointRadius float64
}

var DefaultRenderOptions = RenderOptions{Scale: 40, PointRadius: 4}

// Draw the clicks and the last result. The y axis points up, like the
// geometry. Fails with ErrNothingToRender for a scene with no clicks.
func Render(s *Scene, opts RenderOptions) (*gg.Context, error) {
	if len(s.Clicks) == 0 {
		return nil, ErrNothingToRender
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultRenderOptions.Scale
	}
	if opts.PointRadius <= 0 {
		opts.PointRadius = DefaultRenderOptions.PointRadius
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range s.Clicks {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	extent := math.Max(maxX-minX, maxY-minY)
	if math.IsInf(extent, 0) || math.IsNaN(extent) {
		return nil, errors.Errorf("cannot render clicks spanning %g units", extent)
	}
	if opts.Scale*extent > MaxRenderSize {
		opts.Scale = MaxRenderSize / extent
	}

	width := int(math.Round(opts.Scale*(maxX-minX))) + renderPadding*2
	height := int(math.Round(opts.Scale*(maxY-minY))) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-minX, -minY)

	// Line widths are in pixels, but shapes are in scene units
	const lineWidth = 2

	if len(s.Hull) > 0 {
		c.MoveTo(s.Hull[0].X, s.Hull[0].Y)
		for _, p := range s.Hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(lineWidth)
		c.Stroke()
	}

	highlighted := make(map[int]bool, len(s.Intersecting))
	for _, i := range s.Intersecting {
		highlighted[i] = true
	}
	for i, segment := range s.Segments {
		if highlighted[i] {
			c.SetRGB(1, 0.2, 0.2)
		} else {
			c.SetRGB(0, 1, 1)
		}
		drawSegment(c, segment, lineWidth)
	}

	if s.Pair != nil {
		c.SetRGB(1, 1, 0)
		drawSegment(c, advanced.Segment{From: s.Pair.A, To: s.Pair.B}, lineWidth)
	}

	c.SetRGB(0.5, 0.2, 0.7)
	for _, p := range s.Clicks {
		c.DrawCircle(p.X, p.Y, opts.PointRadius/opts.Scale)
		c.Fill()
	}
	return c, nil
}

func drawSegment(c *gg.Context, segment advanced.Segment, lineWidth float64) {
	c.SetLineWidth(lineWidth)
	c.DrawLine(segment.From.X, segment.From.Y, segment.To.X, segment.To.Y)
	c.Stroke()
}
