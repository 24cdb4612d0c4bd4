package fs

import (
	"context"

	"github.com/fwojciec/zinebox"
)

// Ensure Catalog implements zinebox.Catalog at compile time.
var _ zinebox.Catalog = (*Catalog)(nil)

// Catalog assigns 1-based ordinals to the issues in a Store. The sequence
// is derived fresh from the directory on every call; within a single call
// chain the store's sorted enumeration keeps ordinals reproducible.
type Catalog struct {
	store *Store
}

// NewCatalog creates a Catalog over store.
func NewCatalog(store *Store) *Catalog {
	return &Catalog{store: store}
}

// Enumerate returns the issue names in ordinal order.
func (c *Catalog) Enumerate(ctx context.Context) ([]string, error) {
	return c.store.ListIssues(ctx)
}

// Resolve maps a 1-based ordinal to an issue name.
func (c *Catalog) Resolve(ctx context.Context, n int) (string, error) {
	names, err := c.store.ListIssues(ctx)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(names) {
		return "", zinebox.Errorf(zinebox.EINVALID, "invalid issue number %d", n)
	}
	return names[n-1], nil
}
