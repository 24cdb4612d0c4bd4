package mock

import (
	"context"

	"github.com/fwojciec/zinebox"
)

var _ zinebox.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore is a mock implementation of zinebox.ArchiveStore.
type ArchiveStore struct {
	EnsureRootFn func() error
	ExistsFn     func(name string) bool
	WriteFn      func(ctx context.Context, name string, data []byte) error
	ListIssuesFn func(ctx context.Context) ([]string, error)
}

func (s *ArchiveStore) EnsureRoot() error {
	return s.EnsureRootFn()
}

func (s *ArchiveStore) Exists(name string) bool {
	return s.ExistsFn(name)
}

func (s *ArchiveStore) Write(ctx context.Context, name string, data []byte) error {
	return s.WriteFn(ctx, name, data)
}

func (s *ArchiveStore) ListIssues(ctx context.Context) ([]string, error) {
	return s.ListIssuesFn(ctx)
}
