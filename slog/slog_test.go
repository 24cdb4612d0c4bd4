package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/zinebox"
	"github.com/fwojciec/zinebox/mock"
	zineboxslog "github.com/fwojciec/zinebox/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLister_ListLinks(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LinkLister{
			ListLinksFn: func(_ context.Context, _ string) ([]zinebox.Candidate, error) {
				return []zinebox.Candidate{
					{Filename: "phrack1.tar.gz", URL: "http://archive.example/phrack1.tar.gz"},
					{Filename: "phrack2.tar.gz", URL: "http://archive.example/phrack2.tar.gz"},
				}, nil
			},
		}

		lister := zineboxslog.NewLoggingLister(inner, logger)
		candidates, err := lister.ListLinks(context.Background(), "http://archive.example/")

		require.NoError(t, err)
		assert.Len(t, candidates, 2)
		output := buf.String()
		assert.Contains(t, output, "link discovery")
		assert.Contains(t, output, "url=http://archive.example/")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LinkLister{
			ListLinksFn: func(_ context.Context, baseURL string) ([]zinebox.Candidate, error) {
				return nil, zinebox.Errorf(zinebox.EUNAVAILABLE, "fetch %s: connection refused", baseURL)
			},
		}

		lister := zineboxslog.NewLoggingLister(inner, logger)
		_, err := lister.ListLinks(context.Background(), "http://archive.example/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "link discovery")
		assert.Contains(t, output, "connection refused")
	})
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) ([]byte, error) {
			return []byte("tarball"), nil
		},
	}

	fetcher := zineboxslog.NewLoggingFetcher(inner, logger)
	body, err := fetcher.Fetch(context.Background(), "http://archive.example/phrack1.tar.gz")

	require.NoError(t, err)
	assert.Equal(t, []byte("tarball"), body)
	output := buf.String()
	assert.Contains(t, output, "fetch")
	assert.Contains(t, output, "url=http://archive.example/phrack1.tar.gz")
	assert.Contains(t, output, "bytes=7")
}

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Searcher{
		SearchFn: func(_ context.Context, _ string) ([]string, error) {
			return []string{"phrack1.txt"}, nil
		},
	}

	searcher := zineboxslog.NewLoggingSearcher(inner, logger)
	found, err := searcher.Search(context.Background(), "stack")

	require.NoError(t, err)
	assert.Equal(t, []string{"phrack1.txt"}, found)
	output := buf.String()
	assert.Contains(t, output, "search")
	assert.Contains(t, output, "keyword=stack")
	assert.Contains(t, output, "hits=1")
}
