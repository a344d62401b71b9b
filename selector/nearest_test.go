package selector

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/rubenv/routepick/selector/snap"
)

func TestRankOrdersByDistance(t *testing.T) {
	is := is.New(t)

	l := newFakeLine(parallel(40), parallel(5), parallel(12))

	ranked, err := Rank(snap.Point{0, 0}, l.lines)
	is.NoErr(err)
	is.Equal(len(ranked), 3)
	is.Equal(ranked[0].Route, l.routes[1])
	is.Equal(ranked[1].Route, l.routes[2])
	is.Equal(ranked[2].Route, l.routes[0])
	is.Equal(ranked[0].Position, 1)
	is.True(ranked[2].Distance > 39.99 && ranked[2].Distance < 40.01)
}

func TestRankEmpty(t *testing.T) {
	is := is.New(t)

	ranked, err := Rank(snap.Point{0, 0}, nil)
	is.NoErr(err)
	is.Equal(len(ranked), 0)

	_, err = Nearest(snap.Point{0, 0}, nil, nil)
	is.Err(err)
}

func TestNearestTiePrefersFirstInOrder(t *testing.T) {
	is := is.New(t)

	// Same geometry twice, neither of them primary.
	l := newFakeLine(parallel(40), parallel(5), parallel(5))

	for i := 0; i < 10; i++ {
		c, err := Nearest(snap.Point{0, 0}, l.lines, l.routes[0])
		is.NoErr(err)
		is.Equal(c.Route, l.routes[1])
	}
}

func TestNearestTiePrefersNonPrimary(t *testing.T) {
	is := is.New(t)

	l := newFakeLine(parallel(5), parallel(5))

	c, err := Nearest(snap.Point{0, 0}, l.lines, l.routes[0])
	is.NoErr(err)
	is.Equal(c.Route, l.routes[1])

	c, err = Nearest(snap.Point{0, 0}, l.lines, l.routes[1])
	is.NoErr(err)
	is.Equal(c.Route, l.routes[0])
}

func TestNearestCloserPrimaryStillWins(t *testing.T) {
	is := is.New(t)

	l := newFakeLine(parallel(5), parallel(5.01))

	c, err := Nearest(snap.Point{0, 0}, l.lines, l.routes[0])
	is.NoErr(err)
	is.Equal(c.Route, l.routes[0])
}
