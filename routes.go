package routepick

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"strconv"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rubenv/routepick/selector/snap"
	"golang.org/x/sync/errgroup"
)

// LoadRouteSets loads all locations concurrently and merges them in the
// order they were given.
func LoadRouteSets(ctx context.Context, locations ...string) (*RouteSet, error) {
	sets := make([]*RouteSet, len(locations))

	g, ctx := errgroup.WithContext(ctx)
	for i, location := range locations {
		i, location := i, location
		g.Go(func() error {
			set, err := LoadRoutes(ctx, location)
			if err != nil {
				return fmt.Errorf("%s: %s", location, err)
			}
			sets[i] = set
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}

	result := NewRouteSet()
	seen := make(map[string]bool)
	for _, set := range sets {
		for _, r := range set.Routes {
			if seen[r.ID()] {
				return nil, fmt.Errorf("Duplicate route id: %s", r.ID())
			}
			seen[r.ID()] = true
		}
		result.Merge(set)
	}
	return result, nil
}

// LoadRoutes reads a GeoJSON route set from a file or an http(s) URL.
func LoadRoutes(ctx context.Context, location string) (*RouteSet, error) {
	if isURL(location) {
		return downloadRoutes(ctx, location)
	}
	return ReadRoutes(location)
}

func ReadRoutes(filename string) (*RouteSet, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ParseRoutes(fp)
}

func downloadRoutes(ctx context.Context, url string) (*RouteSet, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Unexpected status: %s", resp.Status)
	}
	return ParseRoutes(resp.Body)
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// ParseRoutes reads a FeatureCollection with one LineString (or connected
// MultiLineString) feature per route.
func ParseRoutes(in io.Reader) (*RouteSet, error) {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	return RoutesFromFeatures(fc)
}

// RoutesFromFeatures converts features into routes. The feature id becomes
// the route id, the "name" property its name and a true "primary" property
// flags the primary route.
func RoutesFromFeatures(fc *geojson.FeatureCollection) (*RouteSet, error) {
	set := NewRouteSet()
	seen := make(map[string]bool)

	for i, feat := range fc.Features {
		id, err := featureID(feat)
		if err != nil {
			return nil, fmt.Errorf("Feature %d: %s", i, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("Duplicate route id: %s", id)
		}

		path, err := featurePath(feat)
		if err != nil {
			return nil, fmt.Errorf("Feature %d: %s", i, err)
		}
		err = snap.Validate(path)
		if err != nil {
			return nil, fmt.Errorf("Feature %d: %s", i, err)
		}

		r := NewRoute(id, path)
		seen[r.ID()] = true
		for k, v := range feat.Properties {
			switch k {
			case "name":
				r.Name, _ = v.(string)
			case "primary":
				if b, _ := v.(bool); b && set.Primary < 0 {
					set.Primary = len(set.Routes)
				}
			default:
				r.Properties[k] = v
			}
		}

		set.Routes = append(set.Routes, r)
	}

	return set, nil
}

// A MultiLineString is accepted when its parts join up into one path.
func featurePath(feat *geojson.Feature) (snap.Path, error) {
	g := feat.Geometry
	switch {
	case g == nil:
		return nil, fmt.Errorf("Missing geometry")
	case g.IsLineString():
		return snap.FromCoordinates(g.LineString)
	case g.IsMultiLineString():
		pieces := make([]snap.Path, 0, len(g.MultiLineString))
		for _, line := range g.MultiLineString {
			piece, err := snap.FromCoordinates(line)
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, piece)
		}

		joined := snap.Join(pieces)
		if len(joined) != 1 {
			return nil, fmt.Errorf("MultiLineString splits into %d disconnected paths", len(joined))
		}
		return joined[0], nil
	default:
		return nil, fmt.Errorf("Unsupported geometry: %s", g.Type)
	}
}

func featureID(feat *geojson.Feature) (string, error) {
	switch v := feat.ID.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("Unsupported ID type: %T", feat.ID)
	}
}

// ReadTaps reads tap locations from a FeatureCollection of Point features.
func ReadTaps(filename string) ([]snap.Point, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	taps := make([]snap.Point, 0, len(fc.Features))
	for i, feat := range fc.Features {
		if feat.Geometry == nil || !feat.Geometry.IsPoint() || len(feat.Geometry.Point) < 2 {
			return nil, fmt.Errorf("Feature %d: need a Point geometry", i)
		}
		taps = append(taps, snap.Point{feat.Geometry.Point[0], feat.Geometry.Point[1]})
	}
	return taps, nil
}
