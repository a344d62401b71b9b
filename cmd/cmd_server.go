package cmd

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type CmdServer struct {
	global *GlobalOptions

	Listen string `short:"l" long:"listen" description:"Listen on this address, overrides the config"`
}

func init() {
	_, err := parser.AddCommand("server",
		"Run tap server",
		"Run tap server\n\nAccepts taps over HTTP and keeps track of the primary route",
		&CmdServer{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdServer) Usage() string {
	return ""
}

func (cmd CmdServer) Execute(args []string) error {
	env, err := cmd.global.NewEnv()
	if err != nil {
		return err
	}

	listen := env.Config().Listen
	if cmd.Listen != "" {
		listen = cmd.Listen
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM)
	signal.Notify(stop, syscall.SIGINT)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-stop
		env.Stop()
	}()

	err = env.StartServer(listen)
	if err != nil {
		return err
	}

	wg.Wait()
	return nil
}
