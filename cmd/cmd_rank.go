package cmd

import (
	"fmt"

	"github.com/kr/pretty"
)

type CmdRank struct {
	global *GlobalOptions
}

type rankedRoute struct {
	Route    string
	Distance float64
	OnPath   [2]float64
}

func init() {
	_, err := parser.AddCommand("rank",
		"Rank routes",
		"List all routes by distance to a point",
		&CmdRank{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdRank) Usage() string {
	return "lng lat"
}

func (cmd CmdRank) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	p, err := parsePoint(args)
	if err != nil {
		return err
	}

	env, err := cmd.global.NewEnv()
	if err != nil {
		return err
	}
	defer env.Stop()

	ranked, err := env.Selector().Rank(p)
	if err != nil {
		return err
	}

	for _, c := range ranked {
		fmt.Printf("%# v\n", pretty.Formatter(rankedRoute{
			Route:    c.Route.ID(),
			Distance: c.Distance,
			OnPath:   c.OnPath,
		}))
	}
	return nil
}
