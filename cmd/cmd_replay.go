package cmd

import (
	"fmt"
	"os"

	"github.com/cheggaaa/pb"
	"github.com/kr/pretty"
	"github.com/rubenv/routepick"
	"github.com/rubenv/routepick/selector"
)

type CmdReplay struct {
	global *GlobalOptions
}

type replaySummary struct {
	Taps     int
	Outcomes map[string]int
	Primary  string
}

func init() {
	_, err := parser.AddCommand("replay",
		"Replay taps",
		"Feed a GeoJSON file of tap points through one selector",
		&CmdReplay{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdReplay) Usage() string {
	return "taps.geojson"
}

func (cmd CmdReplay) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	taps, err := routepick.ReadTaps(args[0])
	if err != nil {
		return err
	}

	env, err := cmd.global.NewEnv()
	if err != nil {
		return err
	}
	defer env.Stop()

	sel := env.Selector()
	sel.SetChangeObserver(selector.ChangeObserverFunc(func(selector.Route) {}))

	summary := replaySummary{
		Taps:     len(taps),
		Outcomes: make(map[string]int),
	}

	bar := pb.New(len(taps))
	bar.Output = os.Stderr
	bar.Start()
	for i, p := range taps {
		out, err := sel.HandleTap(p)
		if err != nil {
			bar.Finish()
			return fmt.Errorf("Tap %d at %s: %s", i, p, err)
		}
		summary.Outcomes[out.Kind.String()]++
		bar.Increment()
	}
	bar.Finish()

	if r := env.Line().PrimaryRoute(); r != nil {
		summary.Primary = r.ID()
	}
	fmt.Printf("%# v\n", pretty.Formatter(summary))
	return nil
}
