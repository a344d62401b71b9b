package selector

import "github.com/rubenv/routepick/selector/snap"

// Length of one degree along the equator, for the radius used by snap.
const degree = 111319.49079327357

type testRoute struct {
	id string
}

func (r *testRoute) ID() string { return r.id }

// A north-south path east of the origin at the given distance in meters.
func parallel(meters float64) snap.Path {
	lng := meters / degree
	return snap.Path{{lng, -0.01}, {lng, 0.01}}
}

type fakeLine struct {
	lines    []RouteLineString
	routes   []Route
	primary  Route
	visible  bool
	promoted []Route
}

func newFakeLine(paths ...snap.Path) *fakeLine {
	l := &fakeLine{visible: true}
	for i, path := range paths {
		r := &testRoute{id: string(rune('A' + i))}
		l.lines = append(l.lines, RouteLineString{Path: path, Route: r})
		l.routes = append(l.routes, r)
	}
	if len(l.routes) > 0 {
		l.primary = l.routes[0]
	}
	return l
}

func (l *fakeLine) RouteLineStrings() []RouteLineString { return l.lines }
func (l *fakeLine) DirectionsRoutes() []Route          { return l.routes }
func (l *fakeLine) Visible() bool                       { return l.visible }
func (l *fakeLine) PrimaryRoute() Route                 { return l.primary }

func (l *fakeLine) UpdatePrimaryRoute(route Route) {
	l.promoted = append(l.promoted, route)
	l.primary = route
}

type recorder struct {
	selected []Route
}

func (r *recorder) OnNewPrimaryRouteSelected(route Route) {
	r.selected = append(r.selected, route)
}
