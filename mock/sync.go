package mock

import (
	"context"

	"github.com/fwojciec/zinebox"
)

var _ zinebox.Synchronizer = (*Synchronizer)(nil)

// Synchronizer is a mock implementation of zinebox.Synchronizer.
type Synchronizer struct {
	SyncFn func(ctx context.Context, baseURL string) (*zinebox.SyncReport, error)
}

func (s *Synchronizer) Sync(ctx context.Context, baseURL string) (*zinebox.SyncReport, error) {
	return s.SyncFn(ctx, baseURL)
}
