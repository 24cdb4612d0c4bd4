package mock

import (
	"context"

	"github.com/fwojciec/zinebox"
)

var _ zinebox.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of zinebox.Catalog.
type Catalog struct {
	EnumerateFn func(ctx context.Context) ([]string, error)
	ResolveFn   func(ctx context.Context, n int) (string, error)
}

func (c *Catalog) Enumerate(ctx context.Context) ([]string, error) {
	return c.EnumerateFn(ctx)
}

func (c *Catalog) Resolve(ctx context.Context, n int) (string, error) {
	return c.ResolveFn(ctx, n)
}

var _ zinebox.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of zinebox.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, keyword string) ([]string, error)
}

func (s *Searcher) Search(ctx context.Context, keyword string) ([]string, error) {
	return s.SearchFn(ctx, keyword)
}

var _ zinebox.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of zinebox.Viewer.
type Viewer struct {
	ViewFn         func(ctx context.Context, name string) (string, error)
	ViewByNumberFn func(ctx context.Context, n int) (string, error)
}

func (v *Viewer) View(ctx context.Context, name string) (string, error) {
	return v.ViewFn(ctx, name)
}

func (v *Viewer) ViewByNumber(ctx context.Context, n int) (string, error) {
	return v.ViewByNumberFn(ctx, n)
}
