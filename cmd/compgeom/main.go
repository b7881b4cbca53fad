package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/compgeom/advanced"
	"github.com/osuushi/compgeom/scene"
)

// Runs one algorithm over geometry read from stdin, the same way a viewer
// would feed it clicks.
//
// Point commands (hull, closest, direction) read one "x y" point per line.
// Segment commands (sweep, pair) read one "x1 y1 x2 y2" segment per line.
// Blank lines and lines starting with # are skipped.
var (
	app     = kingpin.New("compgeom", "2D computational geometry on points and segments read from stdin.")
	verbose = app.Flag("verbose", "Log debug output, including sweep events.").Short('v').Bool()
	pngPath = app.Flag("png", "Render the scene to this PNG file.").String()
	scale   = app.Flag("scale", "Pixels per unit when rendering.").Default("40").Float64()
	preview = app.Flag("imgcat", "Print the rendered scene to the terminal (iTerm only).").Bool()

	hullCmd      = app.Command("hull", "Convex hull of a point set.")
	closestCmd   = app.Command("closest", "Closest pair of a point set.")
	directionCmd = app.Command("direction", "Turn direction of three points.")
	sweepCmd     = app.Command("sweep", "Whether any two segments in a set intersect.")
	pairCmd      = app.Command("pair", "Whether two segments intersect.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	app.FatalIfError(err, "creating logger")
	defer logger.Sync() //nolint:errcheck

	algorithm := map[string]scene.Algorithm{
		hullCmd.FullCommand():      scene.Hull,
		closestCmd.FullCommand():   scene.Closest,
		directionCmd.FullCommand(): scene.Direction,
		sweepCmd.FullCommand():     scene.SegmentSet,
		pairCmd.FullCommand():      scene.SegmentPair,
	}[command]

	s := scene.New(scene.Config{Algorithm: algorithm, Logger: logger})
	evalErr := run(s, os.Stdin)

	fmt.Println(verdict(s, evalErr))

	if *pngPath != "" {
		app.FatalIfError(render(s, *pngPath, *scale, *preview), "rendering")
	}
	if evalErr != nil {
		os.Exit(1)
	}
}

// The scene's last message, coloured for the terminal.
func verdict(s *scene.Scene, evalErr error) string {
	switch {
	case evalErr != nil:
		return aurora.Red(s.LastMessage).String()
	case s.Turn != nil:
		return "Direction " + s.Turn.Colored().String()
	case len(s.Intersecting) > 0:
		return aurora.Green(s.LastMessage).String()
	}
	return aurora.Cyan(s.LastMessage).String()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	return config.Build()
}

// Feed every input point to the scene as a click, then evaluate unless the
// scene already did so itself.
func run(s *scene.Scene, in io.Reader) error {
	points, err := readPoints(in)
	if err != nil {
		s.LastMessage = err.Error()
		return err
	}
	for _, p := range points {
		if err := s.Click(p); err != nil {
			return err
		}
	}
	switch s.Algorithm {
	case scene.Direction, scene.SegmentPair:
		// These evaluate on their last click. Anything else is the wrong
		// amount of input.
		if s.Segments == nil {
			return s.Evaluate()
		}
		return nil
	}
	return s.Evaluate()
}

// Read whitespace separated coordinates, two per point. Segment lines simply
// contribute two points each.
func readPoints(in io.Reader) ([]advanced.Point, error) {
	var points []advanced.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields)%2 != 0 {
			return nil, errors.Errorf("line %d: odd number of coordinates", lineNumber)
		}
		for i := 0; i < len(fields); i += 2 {
			x, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			y, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			points = append(points, advanced.Point{X: x, Y: y})
		}
	}
	return points, errors.Wrap(scanner.Err(), "reading input")
}

func render(s *scene.Scene, path string, scale float64, preview bool) error {
	c, err := scene.Render(s, scene.RenderOptions{Scale: scale})
	if err != nil {
		return err
	}
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if preview {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
