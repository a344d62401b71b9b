package routepick

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/rubenv/routepick/selector"
	"github.com/rubenv/routepick/selector/snap"
)

func TestRouteLinePrimary(t *testing.T) {
	is := is.New(t)

	set, err := ParseRoutes(strings.NewReader(twoRoutes))
	is.NoErr(err)

	l := NewRouteLine(set)
	is.True(l.Visible())
	is.Equal(l.PrimaryRouteIndex(), 1)
	is.Equal(l.PrimaryRoute(), selector.Route(set.Routes[1]))

	l.UpdatePrimaryRoute(set.Routes[0])
	is.Equal(l.PrimaryRouteIndex(), 0)

	// Unknown routes leave the primary alone.
	l.UpdatePrimaryRoute(NewRoute("other", snap.Path{{0, 0}, {1, 1}}))
	is.Equal(l.PrimaryRouteIndex(), 0)

	lines := l.RouteLineStrings()
	is.Equal(len(lines), 2)
	is.Equal(lines[1].Route, selector.Route(set.Routes[1]))
	is.Equal(lines[1].Path, set.Routes[1].Path)

	routes := l.DirectionsRoutes()
	is.Equal(routes[0], selector.Route(set.Routes[0]))
}

func TestRouteLineEmpty(t *testing.T) {
	is := is.New(t)

	l := NewRouteLine(NewRouteSet())
	is.True(l.PrimaryRoute() == nil)
	is.Equal(l.PrimaryRouteIndex(), -1)
	is.Equal(len(l.RouteLineStrings()), 0)
}

func TestRouteLineDefaultsToFirst(t *testing.T) {
	is := is.New(t)

	set := NewRouteSet()
	set.Routes = append(set.Routes,
		NewRoute("a", snap.Path{{0, 0}, {1, 1}}),
		NewRoute("b", snap.Path{{0, 0}, {1, 2}}))

	l := NewRouteLine(set)
	is.Equal(l.PrimaryRouteIndex(), 0)

	l.SetVisible(false)
	is.False(l.Visible())
}

func TestRouteLineFeatureCollection(t *testing.T) {
	is := is.New(t)

	set, err := ParseRoutes(strings.NewReader(twoRoutes))
	is.NoErr(err)

	fc := NewRouteLine(set).FeatureCollection()
	data, err := json.Marshal(fc)
	is.NoErr(err)

	again, err := ParseRoutes(strings.NewReader(string(data)))
	is.NoErr(err)
	is.Equal(again.Primary, 1)
	is.Equal(again.Routes[0].ID(), "a")
	is.Equal(again.Routes[1].Name, "Scenic")
	is.Equal(again.Routes[1].Path, set.Routes[1].Path)
}
