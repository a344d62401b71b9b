package routepick

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/rubenv/routepick/selector"
)

// Env is a map session: the routes on display and the selector handling
// taps on them.
type Env struct {
	ctx  context.Context
	cf   context.CancelFunc
	done sync.WaitGroup

	config   *Config
	line     *RouteLine
	selector *selector.Selector
}

func NewEnv(config *Config) (*Env, error) {
	ctx, cf := context.WithCancel(context.Background())

	set, err := LoadRouteSets(ctx, config.Locations()...)
	if err != nil {
		cf()
		return nil, err
	}

	env := &Env{
		ctx:    ctx,
		cf:     cf,
		config: config,
		line:   NewRouteLine(set),
	}
	env.line.SetVisible(config.Visible)

	env.selector = selector.New(env.line)
	env.selector.SetAlternatesSelectable(config.AlternatesSelectable)
	env.selector.SetChangeObserver(selector.ChangeObserverFunc(env.primaryChanged))

	env.log("routes", "Loaded %d routes from %d sources", len(set.Routes), len(config.Locations()))
	return env, nil
}

func (e *Env) Config() *Config {
	return e.config
}

func (e *Env) Line() *RouteLine {
	return e.line
}

func (e *Env) Selector() *selector.Selector {
	return e.selector
}

func (e *Env) primaryChanged(route selector.Route) {
	e.log(fmt.Sprintf("route/%s", route.ID()), "Selected as primary route")
}

func (e *Env) log(topic, format string, args ...interface{}) {
	log.Printf("[%s] %s", topic, fmt.Sprintf(format, args...))
}

func (e *Env) Stop() {
	e.cf()
	e.done.Wait()
}

func (e *Env) StartServer(listen string) error {
	e.done.Add(1)
	defer e.done.Done()

	s := &http.Server{
		Addr:           listen,
		Handler:        e.Handler(),
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		<-e.ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		s.Shutdown(ctx)
	}()

	e.log("server", "Listening on %s", listen)
	err := s.ListenAndServe()
	if err == http.ErrServerClosed {
		err = nil
	}
	return err
}
