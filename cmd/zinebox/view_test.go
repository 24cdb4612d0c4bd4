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

func TestViewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints issue content", func(t *testing.T) {
		t.Parallel()

		viewer := &mock.Viewer{
			ViewByNumberFn: func(_ context.Context, n int) (string, error) {
				assert.Equal(t, 2, n)
				return "issue two content", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Viewer: viewer,
		}

		cmd := &main.ViewCmd{Number: 2}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "issue two content")
	})

	t.Run("out-of-range number prints a message, no error", func(t *testing.T) {
		t.Parallel()

		viewer := &mock.Viewer{
			ViewByNumberFn: func(_ context.Context, n int) (string, error) {
				return "", zinebox.Errorf(zinebox.EINVALID, "invalid issue number %d", n)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Viewer: viewer,
		}

		cmd := &main.ViewCmd{Number: 0}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Invalid issue number 0.")
	})

	t.Run("missing file prints a message, no error", func(t *testing.T) {
		t.Parallel()

		viewer := &mock.Viewer{
			ViewByNumberFn: func(_ context.Context, _ int) (string, error) {
				return "", zinebox.Errorf(zinebox.ENOTFOUND, "phrack1.txt not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Viewer: viewer,
		}

		cmd := &main.ViewCmd{Number: 1}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Error: phrack1.txt not found")
	})

	t.Run("storage failure is a process-level error", func(t *testing.T) {
		t.Parallel()

		viewErr := zinebox.Errorf(zinebox.EUNAVAILABLE, "cannot read archive directory")
		viewer := &mock.Viewer{
			ViewByNumberFn: func(_ context.Context, _ int) (string, error) {
				return "", viewErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Viewer: viewer,
		}

		cmd := &main.ViewCmd{Number: 1}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, viewErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
