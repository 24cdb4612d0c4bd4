package zinebox

import "context"

// Synchronizer mirrors the remote archive into the local store.
type Synchronizer interface {
	// Sync discovers candidates at baseURL and downloads each one that is
	// not already present locally. Per-candidate failures are folded into
	// the report; only an unusable store or an unreachable index is fatal.
	Sync(ctx context.Context, baseURL string) (*SyncReport, error)
}
