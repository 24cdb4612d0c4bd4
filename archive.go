package zinebox

import (
	"context"
	"strings"
)

// Filename suffixes recognized by the archive. There is exactly one
// document kind, so plain predicates are used instead of any type registry.
const (
	// ArchiveSuffix marks a downloadable issue tarball on the remote index.
	ArchiveSuffix = ".tar.gz"

	// IssueSuffix marks a readable plain-text issue in the local archive.
	IssueSuffix = ".txt"
)

// IsArchiveName reports whether name looks like a downloadable issue
// tarball. Candidates that fail this predicate are ignored by the
// synchronizer, silently.
func IsArchiveName(name string) bool {
	return strings.HasSuffix(name, ArchiveSuffix)
}

// IsIssueName reports whether name is a readable issue in the local archive.
func IsIssueName(name string) bool {
	return strings.HasSuffix(name, IssueSuffix)
}

// Candidate represents a downloadable file discovered on the remote archive
// index: a filename paired with the URL it can be fetched from. Candidates
// are transient and never persisted.
type Candidate struct {
	Filename string
	URL      string
}

// Validate returns an error if the candidate contains invalid fields.
func (c *Candidate) Validate() error {
	if c.Filename == "" {
		return Errorf(EINVALID, "candidate filename required")
	}
	if c.URL == "" {
		return Errorf(EINVALID, "candidate URL required")
	}
	return nil
}

// SyncReport tallies the per-candidate outcomes of one synchronization
// pass. It exists for observability only; nothing blocks on its shape.
type SyncReport struct {
	Fetched int
	Skipped int
	Failed  int
}

// Total returns the number of candidates that were considered.
func (r *SyncReport) Total() int {
	return r.Fetched + r.Skipped + r.Failed
}

// ArchiveStore owns the local directory of downloaded issues. All other
// components hold only filenames as non-owning references into it.
type ArchiveStore interface {
	// EnsureRoot creates the archive directory (and any parents) if absent.
	// Idempotent. Returns EUNAVAILABLE if the path cannot be created.
	EnsureRoot() error

	// Exists reports whether a file with that exact name is present under
	// the archive root.
	Exists(name string) bool

	// Write durably creates or overwrites a file under the archive root.
	// The entry is visible to enumeration immediately after return.
	// Returns EUNAVAILABLE on I/O failure.
	Write(ctx context.Context, name string, data []byte) error

	// ListIssues returns the names of all readable issues in the archive,
	// sorted lexically so that ordinals assigned from the sequence are
	// reproducible across runs.
	ListIssues(ctx context.Context) ([]string, error)
}
