package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/rubenv/routepick"
	"github.com/rubenv/routepick/selector/snap"
)

type GlobalOptions struct {
	Config       string   `short:"c" long:"config" description:"Config file path"`
	Routes       []string `short:"r" long:"routes" description:"Route set, GeoJSON file or URL (repeatable)"`
	NoAlternates bool     `long:"no-alternates" description:"Alternate routes cannot be selected"`
	Hidden       bool     `long:"hidden" description:"Routes are not drawn"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) LoadConfig() (*routepick.Config, error) {
	config := routepick.NewConfig()
	if g.Config != "" {
		c, err := routepick.ReadConfig(g.Config)
		if err != nil {
			return nil, fmt.Errorf("Failed to read config: %s", err)
		}
		config = c
	}

	config.RouteSets = append(config.RouteSets, g.Routes...)
	if g.NoAlternates {
		config.AlternatesSelectable = false
	}
	if g.Hidden {
		config.Visible = false
	}
	return config, nil
}

func (g *GlobalOptions) NewEnv() (*routepick.Env, error) {
	config, err := g.LoadConfig()
	if err != nil {
		return nil, err
	}
	if len(config.Locations()) == 0 {
		return nil, fmt.Errorf("No routes specified, use --routes or a config file")
	}

	env, err := routepick.NewEnv(config)
	if err != nil {
		return nil, fmt.Errorf("Failed to create env: %s", err)
	}
	return env, nil
}

func parsePoint(args []string) (snap.Point, error) {
	lng, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return snap.Point{}, fmt.Errorf("Invalid longitude: %s", args[0])
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return snap.Point{}, fmt.Errorf("Invalid latitude: %s", args[1])
	}

	p := snap.Point{lng, lat}
	if !p.Valid() {
		return snap.Point{}, fmt.Errorf("Coordinate out of range: %s", p)
	}
	return p, nil
}
