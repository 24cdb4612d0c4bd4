package main

import (
	"fmt"

	"github.com/fwojciec/zinebox"
)

// SearchCmd searches issue contents for a keyword.
type SearchCmd struct {
	Keyword string
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	names, err := deps.Catalog.Enumerate(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zinebox.ErrorMessage(err))
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No issues found. Please download them first.")
		return nil
	}

	found, err := deps.Searcher.Search(deps.Ctx, c.Keyword)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zinebox.ErrorMessage(err))
		return err
	}

	if len(found) == 0 {
		fmt.Fprintf(deps.Stdout, "No results found for %q.\n", c.Keyword)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found keyword %q in the following issues:\n", c.Keyword)
	for _, name := range found {
		fmt.Fprintln(deps.Stdout, name)
	}

	return nil
}
