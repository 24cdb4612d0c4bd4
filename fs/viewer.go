package fs

import (
	"context"
	"strings"

	"github.com/fwojciec/zinebox"
)

// Ensure Viewer implements zinebox.Viewer at compile time.
var _ zinebox.Viewer = (*Viewer)(nil)

// Viewer resolves issues to displayable text.
type Viewer struct {
	store   *Store
	catalog zinebox.Catalog
}

// NewViewer creates a Viewer over store, resolving ordinals via catalog.
func NewViewer(store *Store, catalog zinebox.Catalog) *Viewer {
	return &Viewer{store: store, catalog: catalog}
}

// View returns the content of the named issue with invalid UTF-8
// sequences dropped. Issues predate Unicode; stray high bytes are display
// noise, not an error.
func (v *Viewer) View(ctx context.Context, name string) (string, error) {
	data, err := v.store.ReadIssue(name)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// ViewByNumber resolves a 1-based ordinal via the catalog and returns that
// issue's content. A file deleted between resolution and read surfaces as
// ENOTFOUND, not a crash.
func (v *Viewer) ViewByNumber(ctx context.Context, n int) (string, error) {
	name, err := v.catalog.Resolve(ctx, n)
	if err != nil {
		return "", err
	}
	return v.View(ctx, name)
}
