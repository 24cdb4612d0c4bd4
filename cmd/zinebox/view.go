package main

import (
	"fmt"

	"github.com/fwojciec/zinebox"
)

// ViewCmd prints the content of an issue addressed by its number.
type ViewCmd struct {
	Number int
}

// Run executes the view command. An out-of-range number is reported on
// stdout and is not a process-level failure.
func (c *ViewCmd) Run(deps *Dependencies) error {
	text, err := deps.Viewer.ViewByNumber(deps.Ctx, c.Number)
	if err != nil {
		switch zinebox.ErrorCode(err) {
		case zinebox.EINVALID:
			fmt.Fprintf(deps.Stdout, "Invalid issue number %d.\n", c.Number)
			return nil
		case zinebox.ENOTFOUND:
			fmt.Fprintf(deps.Stdout, "Error: %s\n", zinebox.ErrorMessage(err))
			return nil
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", zinebox.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
