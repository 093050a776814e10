package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/teologia"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	mode, err := teologia.ParseMode(c.Mode)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		return err
	}
	categories, err := parseCategories(c.Categories)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		return err
	}

	session := teologia.NewSession()
	session.SetQuery(c.Query)
	session.SetMode(mode)
	for _, cat := range categories {
		session.ToggleCategory(cat)
	}

	if err := session.Submit(deps.Ctx, deps.Sources); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teologia.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, session.Answer.String())

	if c.Results && len(session.Results) > 0 {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Resultados:")
		for _, src := range session.Results {
			writeSource(deps.Stdout, src)
		}
	}

	return nil
}

// writeSource prints a source as a result list entry.
func writeSource(w io.Writer, src teologia.Source) {
	work := src.Work
	if src.Section != "" {
		work += " (" + src.Section + ")"
	}
	fmt.Fprintf(w, "- %s — %s · %s\n", src.Author, work, src.URL)
	fmt.Fprintf(w, "  %s · temas: %s\n", src.Category, strings.Join(src.Topics, ", "))
}

// parseCategories converts category flags, dropping duplicates.
func parseCategories(values []string) ([]teologia.Category, error) {
	set := teologia.NewCategorySet()
	for _, v := range values {
		c, err := teologia.ParseCategory(v)
		if err != nil {
			return nil, err
		}
		set[c] = struct{}{}
	}
	return set.List(), nil
}
