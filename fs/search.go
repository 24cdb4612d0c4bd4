package fs

import (
	"context"
	"strings"

	"github.com/fwojciec/zinebox"
)

// Ensure Searcher implements zinebox.Searcher at compile time.
var _ zinebox.Searcher = (*Searcher)(nil)

// Searcher performs a case-insensitive substring scan over the full text
// of every cataloged issue. A linear scan is the whole design: the archive
// tops out at a few hundred issues and the directory is the only index.
type Searcher struct {
	store *Store
}

// NewSearcher creates a Searcher over store.
func NewSearcher(store *Store) *Searcher {
	return &Searcher{store: store}
}

// Search returns the names of issues whose content contains keyword,
// case-insensitively, in catalog order. Issues that cannot be read are
// skipped; undecodable bytes never fail a scan since the comparison is
// byte-oriented after case folding.
func (s *Searcher) Search(ctx context.Context, keyword string) ([]string, error) {
	names, err := s.store.ListIssues(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)

	var found []string
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := s.store.ReadIssue(name)
		if err != nil {
			// Deleted or unreadable mid-scan; not fatal to the search.
			continue
		}

		if strings.Contains(strings.ToLower(string(data)), needle) {
			found = append(found, name)
		}
	}

	return found, nil
}
