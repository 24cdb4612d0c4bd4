package zinebox

import "context"

// LinkLister discovers download candidates from a remote archive index.
// Implementations hide how the index page is fetched and parsed.
type LinkLister interface {
	// ListLinks fetches the index at baseURL and returns the downloadable
	// candidates it links to, in page order. An unreachable or unparsable
	// index returns EUNAVAILABLE; this is the only condition fatal to a
	// synchronization pass.
	ListLinks(ctx context.Context, baseURL string) ([]Candidate, error)
}
