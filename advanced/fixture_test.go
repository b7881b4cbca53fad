package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into points and segments. This is not a
// full (or even correct) svg parser. Point sets come from the "points"
// attribute of the single polygon in a file, in file order. Segment sets come
// from every line element, in file order. If anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) *svgparser.Element {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return rootEl
}

func LoadPointFixture(name string) []Point {
	polygons := loadFixture(name).FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		points = append(points, Point{parseCoord(coords[0]), parseCoord(coords[1])})
	}
	return points
}

func LoadSegmentFixture(name string) []Segment {
	lines := loadFixture(name).FindAll("line")
	if len(lines) == 0 {
		log.Fatalf("No lines found in fixture %q", name)
	}

	segments := make([]Segment, 0, len(lines))
	for _, lineEl := range lines {
		attr := lineEl.Attributes
		segments = append(segments, Segment{
			From: Point{parseCoord(attr["x1"]), parseCoord(attr["y1"])},
			To:   Point{parseCoord(attr["x2"]), parseCoord(attr["y2"])},
		})
	}
	return segments
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return v
}
