package main

import (
	"fmt"

	"github.com/fwojciec/teologia"
	"github.com/fwojciec/teologia/fs"
)

// Run executes the seed command.
func (c *SeedCmd) Run(deps *Dependencies) error {
	if deps.Writer == nil {
		err := teologia.Errorf(teologia.EINVALID, "seed requires a database; pass --db or set TEOLOGIA_DB")
		fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		return err
	}

	sources := teologia.Catalog()
	if c.From != "" {
		var err error
		if sources, err = fs.NewSourceStore(c.From).LoadSources(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
			return err
		}
	}

	if err := deps.Writer.ReplaceSources(deps.Ctx, sources); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Seeded %d sources\n", len(sources))
	return nil
}
