// Package mirror provides archive synchronization orchestration. It
// coordinates link discovery, fetch-if-missing downloads, and durable
// writes into the local archive store.
package mirror

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/zinebox"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the download worker pool when the caller does
// not choose one. Set Concurrency to 1 for fully sequential behavior.
const DefaultConcurrency = 4

// Outcome classifies the disposition of a single candidate.
type Outcome int

const (
	OutcomeFetched Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

// Event reports the disposition of one candidate during a sync pass.
type Event struct {
	Outcome  Outcome
	Filename string
	URL      string
	Bytes    int
	Digest   string // xxhash of the fetched body; empty unless fetched
	Err      error
}

// ProgressFunc is a callback for reporting per-candidate sync progress.
// Events arrive in completion order, which under a concurrent pool is not
// candidate order. Skipped events are emitted from the dispatch loop while
// workers are still running, so the callback may be invoked from several
// goroutines at once and must be safe for concurrent use.
type ProgressFunc func(event Event)

// Ensure Syncer implements zinebox.Synchronizer at compile time.
var _ zinebox.Synchronizer = (*Syncer)(nil)

// Syncer mirrors the remote archive into the local store. Each candidate
// is independent: present files are skipped without touching the network,
// and a failed download never aborts the remaining candidates. Re-running
// a sync after a partial run therefore only fetches what is still missing.
type Syncer struct {
	Lister      zinebox.LinkLister
	Fetcher     zinebox.Fetcher
	Store       zinebox.ArchiveStore
	RateLimiter *HostLimiter // optional
	Concurrency int
	Progress    ProgressFunc // optional
}

// Sync runs one synchronization pass against the archive index at baseURL.
func (s *Syncer) Sync(ctx context.Context, baseURL string) (*zinebox.SyncReport, error) {
	if err := s.Store.EnsureRoot(); err != nil {
		return nil, err
	}

	candidates, err := s.Lister.ListLinks(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// Tallies are atomic counters: totals are order-independent, so the
	// concurrent pool reports the same counts the sequential loop would.
	var fetched, skipped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	// Filenames are the entry identity. A repeated filename in the
	// candidate list would race an already-dispatched worker's write to
	// the same file, so only the first candidate per filename is fetched.
	dispatched := make(map[string]bool, len(candidates))

	for _, candidate := range candidates {
		if !zinebox.IsArchiveName(candidate.Filename) {
			// Not a downloadable issue; ignored without being counted.
			continue
		}

		// The existence check runs before dispatch so skipped candidates
		// never reach a worker or the network.
		if dispatched[candidate.Filename] || s.Store.Exists(candidate.Filename) {
			skipped.Add(1)
			s.emit(Event{
				Outcome:  OutcomeSkipped,
				Filename: candidate.Filename,
				URL:      candidate.URL,
			})
			continue
		}
		dispatched[candidate.Filename] = true

		candidate := candidate
		g.Go(func() error {
			event := s.download(gctx, candidate)
			if event.Err != nil {
				failed.Add(1)
			} else {
				fetched.Add(1)
			}
			s.emit(event)
			// Per-candidate failures are independent; never cancel the group.
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &zinebox.SyncReport{
		Fetched: int(fetched.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}, nil
}

// download fetches one candidate and writes it to the store.
func (s *Syncer) download(ctx context.Context, candidate zinebox.Candidate) Event {
	event := Event{
		Outcome:  OutcomeFailed,
		Filename: candidate.Filename,
		URL:      candidate.URL,
	}

	if err := candidate.Validate(); err != nil {
		event.Err = err
		return event
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, hostOf(candidate.URL)); err != nil {
			event.Err = err
			return event
		}
	}

	body, err := s.Fetcher.Fetch(ctx, candidate.URL)
	if err != nil {
		event.Err = err
		return event
	}

	if err := s.Store.Write(ctx, candidate.Filename, body); err != nil {
		event.Err = err
		return event
	}

	event.Outcome = OutcomeFetched
	event.Bytes = len(body)
	event.Digest = fmt.Sprintf("%016x", xxhash.Sum64(body))
	return event
}

func (s *Syncer) emit(event Event) {
	if s.Progress != nil {
		s.Progress(event)
	}
}

// hostOf extracts the host from a candidate URL for rate limiting.
// An unparsable URL rates against the empty host rather than failing here;
// the fetch will report the real error.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
