package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/teologia"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	src, err := deps.Sources.FindSourceByID(deps.Ctx, c.ID)
	if err != nil {
		if teologia.ErrorCode(err) == teologia.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'teologia list' to see available sources.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:       %s\n", src.ID)
	fmt.Fprintf(deps.Stdout, "Author:   %s\n", src.Author)
	fmt.Fprintf(deps.Stdout, "Category: %s\n", src.Category)
	fmt.Fprintf(deps.Stdout, "Work:     %s\n", src.Work)
	if src.Section != "" {
		fmt.Fprintf(deps.Stdout, "Section:  %s\n", src.Section)
	}
	fmt.Fprintf(deps.Stdout, "Topics:   %s\n", strings.Join(src.Topics, ", "))
	fmt.Fprintf(deps.Stdout, "URL:      %s\n", src.URL)
	fmt.Fprintf(deps.Stdout, "\n%s\n", src.Quote)

	return nil
}
