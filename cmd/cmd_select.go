package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/rubenv/routepick"
	"github.com/rubenv/routepick/selector"
)

type CmdSelect struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("select",
		"Handle a tap",
		"Resolve a tap against the loaded routes and apply the selection",
		&CmdSelect{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdSelect) Usage() string {
	return "lng lat"
}

func (cmd CmdSelect) Execute(args []string) error {
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

	sel := env.Selector()
	sel.SetChangeObserver(selector.ChangeObserverFunc(func(r selector.Route) {
		fmt.Printf("New primary route: %s\n", r.ID())
	}))

	out, err := sel.HandleTap(p)
	if err != nil {
		return err
	}

	fmt.Printf("%# v\n", pretty.Formatter(routepick.NewTapResult(out)))
	return nil
}
