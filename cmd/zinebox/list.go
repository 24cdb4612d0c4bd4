package main

import (
	"fmt"

	"github.com/fwojciec/zinebox"
)

// ListCmd prints all downloaded issues with their 1-based numbers.
type ListCmd struct{}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	names, err := deps.Catalog.Enumerate(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zinebox.ErrorMessage(err))
		return err
	}

	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No issues found. Please download them first.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, "Available issues:")
	for i, name := range names {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, name)
	}

	return nil
}
