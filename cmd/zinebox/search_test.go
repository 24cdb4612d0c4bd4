package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/zinebox"
	main "github.com/fwojciec/zinebox/cmd/zinebox"
	"github.com/fwojciec/zinebox/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchDeps(catalog *mock.Catalog, searcher *mock.Searcher, stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Catalog:  catalog,
		Searcher: searcher,
	}
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	catalog := &mock.Catalog{
		EnumerateFn: func(_ context.Context) ([]string, error) {
			return []string{"phrack1.txt", "phrack2.txt"}, nil
		},
	}

	t.Run("prints matching issues", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, keyword string) ([]string, error) {
				assert.Equal(t, "stack", keyword)
				return []string{"phrack2.txt"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.SearchCmd{Keyword: "stack"}

		err := cmd.Run(searchDeps(catalog, searcher, stdout, stderr))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Found keyword \"stack\"")
		assert.Contains(t, stdout.String(), "phrack2.txt")
	})

	t.Run("no matches is a normal result, not an error", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.SearchCmd{Keyword: "blue boxing"}

		err := cmd.Run(searchDeps(catalog, searcher, stdout, stderr))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results found for \"blue boxing\".")
	})

	t.Run("empty archive reports missing issues before searching", func(t *testing.T) {
		t.Parallel()

		emptyCatalog := &mock.Catalog{
			EnumerateFn: func(_ context.Context) ([]string, error) {
				return nil, nil
			},
		}
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, _ string) ([]string, error) {
				t.Fatal("search should not be called")
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.SearchCmd{Keyword: "anything"}

		err := cmd.Run(searchDeps(emptyCatalog, searcher, stdout, stderr))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No issues found")
	})

	t.Run("returns error when search fails", func(t *testing.T) {
		t.Parallel()

		searchErr := zinebox.Errorf(zinebox.EUNAVAILABLE, "cannot read archive directory")
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, searchErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.SearchCmd{Keyword: "stack"}

		err := cmd.Run(searchDeps(catalog, searcher, stdout, stderr))

		require.Error(t, err)
		assert.Equal(t, searchErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
