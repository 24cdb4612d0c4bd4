package zinebox

import "context"

// Catalog enumerates the readable issues in the archive and assigns each a
// stable 1-based ordinal used for "view issue N" addressing. The sequence
// is derived fresh on each call from the archive's current contents.
type Catalog interface {
	// Enumerate returns the issue names in ordinal order.
	Enumerate(ctx context.Context) ([]string, error)

	// Resolve maps a 1-based ordinal to an issue name. Returns EINVALID
	// when n < 1 or n exceeds the current issue count.
	Resolve(ctx context.Context, n int) (string, error)
}

// Searcher scans issue contents for a keyword.
type Searcher interface {
	// Search returns the names of issues whose content contains keyword,
	// case-insensitively. An empty result is not an error. Issues that
	// cannot be read are skipped.
	Search(ctx context.Context, keyword string) ([]string, error)
}

// Viewer resolves an issue to its text content.
type Viewer interface {
	// View returns the content of the named issue. Returns ENOTFOUND if
	// the file is absent from the archive at call time.
	View(ctx context.Context, name string) (string, error)

	// ViewByNumber resolves a 1-based ordinal via the catalog and returns
	// that issue's content. Returns EINVALID for an out-of-range ordinal.
	ViewByNumber(ctx context.Context, n int) (string, error)
}
