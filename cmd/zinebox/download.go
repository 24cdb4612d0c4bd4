package main

import (
	"fmt"

	"github.com/fwojciec/zinebox"
)

// DownloadCmd runs one synchronization pass against the remote archive.
type DownloadCmd struct{}

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	report, err := deps.Syncer.Sync(deps.Ctx, deps.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zinebox.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Sync complete: %d fetched, %d skipped, %d failed.\n",
		report.Fetched, report.Skipped, report.Failed)

	return nil
}
