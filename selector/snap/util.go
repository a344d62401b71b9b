package snap

import "fmt"

// Validate checks that a path can be projected onto: every coordinate is in
// range and there are at least two distinct consecutive points.
func Validate(path Path) error {
	for i, coord := range path {
		if !coord.Valid() {
			return fmt.Errorf("%w: vertex %d %s", ErrInvalidPoint, i, coord)
		}
	}

	if uniqueLength(path) < 2 {
		return fmt.Errorf("%w (got %d)", ErrMalformedPath, uniqueLength(path))
	}
	return nil
}

// Number of points left once consecutive duplicates are dropped.
func uniqueLength(path Path) int {
	n := 0
	for i, coord := range path {
		if i > 0 && path[i-1] == coord {
			continue
		}
		n++
	}
	return n
}

// FromCoordinates converts GeoJSON style coordinates, ignoring any altitude.
func FromCoordinates(coords [][]float64) (Path, error) {
	path := make(Path, len(coords))
	for i, c := range coords {
		if len(c) < 2 {
			return nil, fmt.Errorf("coordinate %d has %d values, need lng and lat", i, len(c))
		}
		path[i] = Point{c[0], c[1]}
	}
	return path, nil
}

func (path Path) Coordinates() [][]float64 {
	coords := make([][]float64, len(path))
	for i, p := range path {
		coords[i] = []float64{p[0], p[1]}
	}
	return coords
}
