package main

import (
	"fmt"

	"github.com/fwojciec/teologia"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	categories, err := parseCategories(c.Categories)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		return err
	}

	sources, err := deps.Sources.FindSources(deps.Ctx, teologia.SourceFilter{
		Categories: teologia.NewCategorySet(categories...),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found. Use 'teologia seed' to populate the database.")
		return nil
	}

	for _, src := range sources {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", src.ID, src.Author, src.Work)
	}

	return nil
}
