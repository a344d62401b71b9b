package routepick

import (
	"sync"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rubenv/routepick/selector"
)

// RouteLine keeps the routes shown on a map: their order, which one is
// primary and whether they are drawn at all.
type RouteLine struct {
	lock    sync.Mutex
	routes  []*Route
	primary int
	visible bool
}

var _ selector.RouteLine = (*RouteLine)(nil)

func NewRouteLine(set *RouteSet) *RouteLine {
	l := &RouteLine{
		visible: true,
	}
	l.SetRoutes(set)
	return l
}

// SetRoutes replaces all routes. Without a flagged primary, the first route
// becomes primary.
func (l *RouteLine) SetRoutes(set *RouteSet) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.routes = append([]*Route(nil), set.Routes...)
	l.primary = set.Primary
	if l.primary < 0 || l.primary >= len(l.routes) {
		l.primary = 0
	}
}

func (l *RouteLine) Routes() []*Route {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]*Route(nil), l.routes...)
}

func (l *RouteLine) RouteLineStrings() []selector.RouteLineString {
	l.lock.Lock()
	defer l.lock.Unlock()

	lines := make([]selector.RouteLineString, len(l.routes))
	for i, r := range l.routes {
		lines[i] = selector.RouteLineString{
			Path:  r.Path,
			Route: r,
		}
	}
	return lines
}

func (l *RouteLine) DirectionsRoutes() []selector.Route {
	l.lock.Lock()
	defer l.lock.Unlock()

	routes := make([]selector.Route, len(l.routes))
	for i, r := range l.routes {
		routes[i] = r
	}
	return routes
}

func (l *RouteLine) Visible() bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.visible
}

func (l *RouteLine) SetVisible(visible bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.visible = visible
}

func (l *RouteLine) PrimaryRoute() selector.Route {
	l.lock.Lock()
	defer l.lock.Unlock()

	// A nil interface, not a nil *Route.
	if len(l.routes) == 0 {
		return nil
	}
	return l.routes[l.primary]
}

// PrimaryRouteIndex is -1 when there are no routes.
func (l *RouteLine) PrimaryRouteIndex() int {
	l.lock.Lock()
	defer l.lock.Unlock()

	if len(l.routes) == 0 {
		return -1
	}
	return l.primary
}

// UpdatePrimaryRoute makes route the primary one. Unknown routes are ignored.
func (l *RouteLine) UpdatePrimaryRoute(route selector.Route) {
	l.lock.Lock()
	defer l.lock.Unlock()

	for i, r := range l.routes {
		if selector.Route(r) == route {
			l.primary = i
			return
		}
	}
}

// FeatureCollection exports the routes as GeoJSON, one LineString feature
// per route, in candidate order.
func (l *RouteLine) FeatureCollection() *geojson.FeatureCollection {
	l.lock.Lock()
	defer l.lock.Unlock()

	fc := geojson.NewFeatureCollection()
	for i, r := range l.routes {
		f := geojson.NewLineStringFeature(r.Path.Coordinates())
		f.ID = r.ID()
		for k, v := range r.Properties {
			f.SetProperty(k, v)
		}
		if r.Name != "" {
			f.SetProperty("name", r.Name)
		}
		f.SetProperty("primary", i == l.primary)
		fc.AddFeature(f)
	}
	return fc
}
