// Selection of the route a user tapped on, among a primary route and its
// alternates drawn on the same map.
package selector

import (
	"log"
	"sync"

	"github.com/rubenv/routepick/selector/snap"
)

// Route is a handle to a navigable route. Routes are compared with ==, so
// implementations should be pointers.
type Route interface {
	ID() string
}

// RouteLineString ties rendered geometry to the route it represents.
type RouteLineString struct {
	Path  snap.Path
	Route Route
}

// RouteLine is whatever draws the routes on the map.
type RouteLine interface {
	RouteLineStrings() []RouteLineString
	DirectionsRoutes() []Route
	Visible() bool
	PrimaryRoute() Route
	UpdatePrimaryRoute(route Route)
}

type ChangeObserver interface {
	OnNewPrimaryRouteSelected(route Route)
}

type ChangeObserverFunc func(route Route)

func (f ChangeObserverFunc) OnNewPrimaryRouteSelected(route Route) {
	f(route)
}

// Selector turns map taps into primary route changes.
//
// A Selector is safe for concurrent use: taps and state changes are
// serialized. Observers are called with the selector locked and must not
// call back into it.
type Selector struct {
	lock                 sync.Mutex
	line                 RouteLine
	observer             ChangeObserver
	alternatesSelectable bool
}

func New(line RouteLine) *Selector {
	return &Selector{
		line:                 line,
		alternatesSelectable: true,
	}
}

// SetChangeObserver replaces the registered observer. Pass nil to remove it.
func (s *Selector) SetChangeObserver(observer ChangeObserver) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.observer = observer
}

func (s *Selector) ChangeObserver() ChangeObserver {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.observer
}

func (s *Selector) SetAlternatesSelectable(selectable bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.alternatesSelectable = selectable
}

func (s *Selector) AlternatesSelectable() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.alternatesSelectable
}

// HandleTap resolves a tap and, when it selects a new route, promotes that
// route and notifies the observer.
func (s *Selector) HandleTap(p snap.Point) (Outcome, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	tap := Tap{
		Point:                p,
		RouteVisible:         s.line.Visible(),
		AlternatesSelectable: s.alternatesSelectable,
		Observed:             s.observer != nil,
	}
	if tap.RouteVisible {
		tap.Lines = s.line.RouteLineStrings()
		tap.Candidates = s.line.DirectionsRoutes()
		tap.Primary = s.line.PrimaryRoute()
	}

	out, err := Resolve(tap)
	if err != nil || out.Kind != Selected {
		return out, err
	}

	s.line.UpdatePrimaryRoute(out.Route)
	s.observer.OnNewPrimaryRouteSelected(tap.Candidates[out.Index])
	return out, nil
}

// OnMapClick is the map click callback. It never consumes the click, so
// other click handlers still run.
func (s *Selector) OnMapClick(p snap.Point) bool {
	_, err := s.HandleTap(p)
	if err != nil {
		log.Printf("selector: ignoring tap at %s: %s", p, err)
	}
	return false
}

// Rank lists all routes by distance to p, without any of the checks or side
// effects of HandleTap.
func (s *Selector) Rank(p snap.Point) ([]Candidate, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return Rank(p, s.line.RouteLineStrings())
}
