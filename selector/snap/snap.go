// Snapping of map taps onto rendered route paths.
//
// Paths are projected on the unit sphere, so the closest point lies on the
// great-circle segments between path vertices. Distances are reported in
// meters regardless of the map's zoom level or projection.
package snap

import (
	"errors"
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var (
	ErrMalformedPath = errors.New("path needs at least two distinct points")
	ErrInvalidPoint  = errors.New("coordinate out of range")
)

// Point is a longitude/latitude pair in degrees, in GeoJSON order.
type Point [2]float64

func (p Point) Lng() float64 { return p[0] }
func (p Point) Lat() float64 { return p[1] }

func (p Point) Valid() bool {
	return p[0] >= -180 && p[0] <= 180 && p[1] >= -90 && p[1] <= 90
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p[0], p[1])
}

// Path is the rendered geometry of a route.
type Path []Point

// Projection is the point on a path closest to some other point.
type Projection struct {
	Point    Point
	Distance float64 // meters
}

// Project finds the point lying on path that is closest to p, considering
// every segment of the path and not just its vertices.
func Project(p Point, path Path) (Projection, error) {
	if !p.Valid() {
		return Projection{}, fmt.Errorf("%w: %s", ErrInvalidPoint, p)
	}

	line, err := makePolyline(path)
	if err != nil {
		return Projection{}, err
	}

	closest, _ := line.Project(toS2(p))
	onPath := fromS2(closest)
	return Projection{
		Point:    onPath,
		Distance: Distance(p, onPath),
	}, nil
}

// Distance between two points in meters.
func Distance(a, b Point) float64 {
	return geo.DistanceHaversine(orb.Point(a), orb.Point(b))
}

func makePolyline(path Path) (*s2.Polyline, error) {
	if err := Validate(path); err != nil {
		return nil, err
	}

	points := make([]s2.Point, 0, len(path))
	for i, coord := range path {
		if i > 0 && path[i-1] == coord {
			continue
		}
		points = append(points, toS2(coord))
	}

	line := s2.Polyline(points)
	return &line, nil
}

func toS2(p Point) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p[1], p[0]))
}

func fromS2(p s2.Point) Point {
	ll := s2.LatLngFromPoint(p)
	return Point{ll.Lng.Degrees(), ll.Lat.Degrees()}
}
