package selector

import (
	"errors"
	"fmt"

	"github.com/rubenv/routepick/selector/snap"
)

var ErrRouteNotFound = errors.New("nearest route is not one of the candidate routes")

type Kind int

const (
	// NoOp means the tap did not target a route at all.
	NoOp Kind = iota
	// NoChange means a nearest route was found but the selection stays.
	NoChange
	// Selected means the nearest route should become the primary route.
	Selected
)

func (k Kind) String() string {
	switch k {
	case NoOp:
		return "noop"
	case NoChange:
		return "nochange"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Tap holds everything known when a tap arrives.
type Tap struct {
	Point                snap.Point
	RouteVisible         bool
	AlternatesSelectable bool
	Lines                []RouteLineString
	Candidates           []Route
	Primary              Route

	// Whether somebody listens for selection changes.
	Observed bool
}

type Outcome struct {
	Kind Kind

	// Only set when a nearest route was resolved (NoChange or Selected).
	Route    Route
	Index    int
	Distance float64
}

func noOp() Outcome {
	return Outcome{Kind: NoOp, Index: -1}
}

// Resolve decides what a tap means for the route selection. It has no side
// effects: a Selected outcome still needs to be applied by the caller.
func Resolve(t Tap) (Outcome, error) {
	if !t.RouteVisible {
		return noOp(), nil
	}
	if len(t.Lines) == 0 || !t.AlternatesSelectable {
		return noOp(), nil
	}

	nearest, err := Nearest(t.Point, t.Lines, t.Primary)
	if err != nil {
		return noOp(), err
	}

	index := indexOf(t.Candidates, nearest.Route)
	if index < 0 {
		return noOp(), fmt.Errorf("%w: %s", ErrRouteNotFound, nearest.Route.ID())
	}

	out := Outcome{
		Kind:     NoChange,
		Route:    nearest.Route,
		Index:    index,
		Distance: nearest.Distance,
	}
	if nearest.Route == t.Primary || !t.Observed {
		return out, nil
	}

	out.Kind = Selected
	return out, nil
}

func indexOf(routes []Route, route Route) int {
	for i, r := range routes {
		if r == route {
			return i
		}
	}
	return -1
}
