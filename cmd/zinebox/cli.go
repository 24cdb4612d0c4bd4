package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/zinebox"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	BaseURL  string
	Syncer   zinebox.Synchronizer
	Catalog  zinebox.Catalog
	Searcher zinebox.Searcher
	Viewer   zinebox.Viewer
}

// CLI defines the command-line interface structure for Kong.
// One action flag per core operation, mirroring the tool's original
// argparse-style surface.
type CLI struct {
	Download bool   `short:"d" xor:"action" help:"Download all issues missing from the local archive."`
	List     bool   `short:"l" xor:"action" help:"List all downloaded issues."`
	Search   string `short:"s" xor:"action" placeholder:"KEYWORD" help:"Search for a keyword in issue contents."`
	View     *int   `short:"v" xor:"action" placeholder:"N" help:"View the content of an issue by number."`

	URL         string        `default:"http://www.phrack.org/archives/tgz/" help:"Archive index URL."`
	Dir         string        `help:"Archive directory (default: $ZINEBOX_DIR or ~/.local/share/phrack_issues)."`
	Concurrency int           `short:"c" default:"4" help:"Concurrent download limit (1 = sequential)."`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per download."`
	Verbose     bool          `help:"Log operations to stderr."`
}
