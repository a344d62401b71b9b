package selector

import (
	"fmt"
	"math"
	"sort"

	"github.com/rubenv/routepick/selector/snap"
)

// Distances closer together than this (in meters) are considered equal.
const TieTolerance = 1e-6

type Candidate struct {
	Route    Route
	Distance float64
	OnPath   snap.Point

	// Position of the route line in the geometry it was ranked from.
	Position int
}

// Rank projects p onto every route line and returns the candidates ordered
// by distance. Equal distances keep their geometry order; see Nearest for
// the tie-break used when selecting.
//
// Lines that cannot be projected onto fail the whole ranking.
func Rank(p snap.Point, lines []RouteLineString) ([]Candidate, error) {
	ranked := make([]Candidate, 0, len(lines))
	for i, line := range lines {
		proj, err := snap.Project(p, line.Path)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", line.Route.ID(), err)
		}

		ranked = append(ranked, Candidate{
			Route:    line.Route,
			Distance: proj.Distance,
			OnPath:   proj.Point,
			Position: i,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked, nil
}

// Nearest returns the route line closest to p.
//
// When several routes are equally close (within TieTolerance) a route that
// is not the current primary wins, then the first one in geometry order.
func Nearest(p snap.Point, lines []RouteLineString, primary Route) (Candidate, error) {
	ranked, err := Rank(p, lines)
	if err != nil {
		return Candidate{}, err
	}
	if len(ranked) == 0 {
		return Candidate{}, fmt.Errorf("no route lines to select from")
	}

	best := ranked[0]
	for _, c := range ranked[1:] {
		if math.Abs(c.Distance-ranked[0].Distance) > TieTolerance {
			break
		}
		if isBetterTie(c, best, primary) {
			best = c
		}
	}
	return best, nil
}

func isBetterTie(c, best Candidate, primary Route) bool {
	cPrimary := c.Route == primary
	bestPrimary := best.Route == primary
	if cPrimary != bestPrimary {
		return bestPrimary
	}
	return c.Position < best.Position
}
