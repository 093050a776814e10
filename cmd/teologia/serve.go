package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	thttp "github.com/fwojciec/teologia/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled
// or the process receives SIGINT or SIGTERM.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := thttp.NewServer(deps.Sources,
		thttp.WithAddr(c.Addr),
		thttp.WithSessionTTL(c.SessionTTL),
		thttp.WithSearchRate(c.SearchRate, c.SearchBurst),
		thttp.WithLogger(deps.Logger),
	)
	if err := server.Listen(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot listen on %s: %v\n", c.Addr, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Serving on %s\n", server.URL())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})
	return g.Wait()
}
