package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/zinebox/fs"
	"github.com/fwojciec/zinebox/goquery"
	zineboxhttp "github.com/fwojciec/zinebox/http"
	"github.com/fwojciec/zinebox/mirror"
	zineboxslog "github.com/fwojciec/zinebox/slog"
)

// indexRPS bounds requests per second against any single archive host.
const indexRPS = 4.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Archive directory. Set before calling Run() to override the default.
	Dir string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Dir: defaultArchiveDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("zinebox"),
		kong.Description("Mirror and read text-zine archive issues locally."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// No arguments: print usage and exit cleanly.
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	dir := cli.Dir
	if dir == "" {
		dir = m.Dir
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store := fs.NewStore(dir)
	catalog := fs.NewCatalog(store)

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		BaseURL:  cli.URL,
		Catalog:  catalog,
		Searcher: fs.NewSearcher(store),
		Viewer:   fs.NewViewer(store, catalog),
	}
	if cli.Verbose {
		deps.Searcher = zineboxslog.NewLoggingSearcher(deps.Searcher, logger)
	}

	if cli.Download {
		fetcher := zineboxhttp.NewFetcher(zineboxhttp.WithTimeout(cli.Timeout))
		syncer := &mirror.Syncer{
			Lister:      goquery.NewLister(fetcher),
			Fetcher:     fetcher,
			Store:       store,
			RateLimiter: mirror.NewHostLimiter(indexRPS),
			Concurrency: cli.Concurrency,
			Progress:    progressLogger(logger),
		}
		if cli.Verbose {
			syncer.Lister = zineboxslog.NewLoggingLister(syncer.Lister, logger)
			syncer.Fetcher = zineboxslog.NewLoggingFetcher(syncer.Fetcher, logger)
		}
		deps.Syncer = syncer
	}

	switch {
	case cli.Download:
		return (&DownloadCmd{}).Run(deps)
	case cli.List:
		return (&ListCmd{}).Run(deps)
	case cli.Search != "":
		return (&SearchCmd{Keyword: cli.Search}).Run(deps)
	case cli.View != nil:
		return (&ViewCmd{Number: *cli.View}).Run(deps)
	default:
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}
}

// progressLogger reports per-candidate sync outcomes through the logger.
// Failures warn (visible by default); the rest is debug-level detail.
func progressLogger(logger *slog.Logger) mirror.ProgressFunc {
	return func(event mirror.Event) {
		switch event.Outcome {
		case mirror.OutcomeFetched:
			logger.Debug("saved issue",
				"file", event.Filename,
				"bytes", event.Bytes,
				"digest", event.Digest,
			)
		case mirror.OutcomeSkipped:
			logger.Debug("skipping issue", "file", event.Filename)
		case mirror.OutcomeFailed:
			logger.Warn("failed to download issue",
				"url", event.URL,
				"err", event.Err,
			)
		}
	}
}

// defaultArchiveDir resolves the archive directory from the environment,
// falling back to the conventional per-user data directory.
func defaultArchiveDir() string {
	if dir := os.Getenv("ZINEBOX_DIR"); dir != "" {
		return dir
	}
	if data := os.Getenv("XDG_DATA_HOME"); data != "" {
		return filepath.Join(data, "phrack_issues")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "phrack_issues"
	}
	return filepath.Join(home, ".local", "share", "phrack_issues")
}
