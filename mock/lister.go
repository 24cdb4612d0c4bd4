package mock

import (
	"context"

	"github.com/fwojciec/zinebox"
)

var _ zinebox.LinkLister = (*LinkLister)(nil)

// LinkLister is a mock implementation of zinebox.LinkLister.
type LinkLister struct {
	ListLinksFn func(ctx context.Context, baseURL string) ([]zinebox.Candidate, error)
}

func (l *LinkLister) ListLinks(ctx context.Context, baseURL string) ([]zinebox.Candidate, error) {
	return l.ListLinksFn(ctx, baseURL)
}
