// Package fs provides filesystem-backed implementations of the archive
// store, catalog, search, and viewer. The archive is a single flat
// directory with one file per downloaded issue; the directory listing is
// the only index.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/zinebox"
)

// Ensure Store implements zinebox.ArchiveStore at compile time.
var _ zinebox.ArchiveStore = (*Store)(nil)

// Store owns the local archive directory.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir. The directory is not created
// until EnsureRoot is called.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the archive directory path.
func (s *Store) Root() string {
	return s.root
}

// EnsureRoot creates the archive directory and any missing parents.
// Idempotent.
func (s *Store) EnsureRoot() error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return zinebox.Errorf(zinebox.EUNAVAILABLE, "cannot create archive directory %q: %v", s.root, err)
	}
	return nil
}

// Exists reports whether a file with that exact name is present under the
// archive root.
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(filepath.Join(s.root, name))
	return err == nil && !info.IsDir()
}

// Write durably creates or overwrites a file under the archive root.
// The data lands in a temporary file first and is renamed into place, so a
// crashed write never leaves a truncated entry visible to enumeration.
func (s *Store) Write(ctx context.Context, name string, data []byte) error {
	final := filepath.Join(s.root, name)
	tmp := final + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return zinebox.Errorf(zinebox.EUNAVAILABLE, "cannot write %q: %v", name, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return zinebox.Errorf(zinebox.EUNAVAILABLE, "cannot write %q: %v", name, err)
	}
	return nil
}

// ListIssues returns the names of all readable issues under the root,
// sorted lexically. Native directory order is not reproducible across
// filesystems, so sorting here is what makes catalog ordinals stable.
func (s *Store) ListIssues(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zinebox.Errorf(zinebox.EUNAVAILABLE, "cannot read archive directory %q: %v", s.root, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if zinebox.IsIssueName(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadIssue returns the raw bytes of a named issue. Returns ENOTFOUND if
// the file is absent at call time.
func (s *Store) ReadIssue(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zinebox.Errorf(zinebox.ENOTFOUND, "%s not found", name)
		}
		return nil, zinebox.Errorf(zinebox.EUNAVAILABLE, "cannot read %q: %v", name, err)
	}
	return data, nil
}
