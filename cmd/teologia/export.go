package main

import (
	"fmt"

	"github.com/fwojciec/teologia"
	"github.com/fwojciec/teologia/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	sources, err := deps.Sources.FindSources(deps.Ctx, teologia.SourceFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		return err
	}

	if err := fs.NewSourceStore(c.Dir).ReplaceSources(deps.Ctx, sources); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d sources to %s\n", len(sources), c.Dir)
	return nil
}
