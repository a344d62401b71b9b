package routepick

import (
	"github.com/google/uuid"
	"github.com/rubenv/routepick/selector/snap"
)

// Route is one navigable route along with the geometry drawn for it.
type Route struct {
	id         string
	Name       string
	Path       snap.Path
	Properties map[string]interface{}
}

// NewRoute creates a route. An empty id gets replaced by a random one.
func NewRoute(id string, path snap.Path) *Route {
	if id == "" {
		id = uuid.New().String()
	}
	return &Route{
		id:         id,
		Path:       path,
		Properties: make(map[string]interface{}),
	}
}

func (r *Route) ID() string {
	return r.id
}

func (r *Route) String() string {
	if r.Name != "" {
		return r.Name
	}
	return r.id
}

// RouteSet is a list of routes as loaded from disk, in candidate order.
type RouteSet struct {
	Routes []*Route

	// Index of the route flagged as primary, -1 if none was.
	Primary int
}

func NewRouteSet() *RouteSet {
	return &RouteSet{
		Routes:  make([]*Route, 0),
		Primary: -1,
	}
}

// Merge appends the routes of other. The first primary flag seen wins.
func (s *RouteSet) Merge(other *RouteSet) {
	if s.Primary < 0 && other.Primary >= 0 {
		s.Primary = len(s.Routes) + other.Primary
	}
	s.Routes = append(s.Routes, other.Routes...)
}
