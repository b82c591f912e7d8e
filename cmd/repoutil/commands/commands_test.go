package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repoutil/cmd/repoutil/commands"
	"go.trai.ch/repoutil/internal/app"
	"go.trai.ch/repoutil/internal/build"
)

type mockApp struct {
	verifyFunc func(ctx context.Context, opts app.VerifyOptions) error
	watchFunc  func(ctx context.Context, opts app.WatchOptions) error
}

func (m *mockApp) Verify(ctx context.Context, opts app.VerifyOptions) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Verify(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.VerifyOptions
		mock := &mockApp{
			verifyFunc: func(_ context.Context, opts app.VerifyOptions) error {
				captured = opts
				return nil
			},
		}

		out := new(bytes.Buffer)
		cli := commands.New(mock)
		cli.SetOutput(out, out)
		cli.SetArgs([]string{
			"verify", "src",
			"-c", "policy.yaml",
			"-o", "json",
			"-p", "project.json", "--pattern", "*.deps.json",
			"--ignore", "node_modules",
			"--cache-dir", ".repoutil/cache",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "src", captured.Root)
		assert.Equal(t, "policy.yaml", captured.ConfigPath)
		assert.Equal(t, "json", captured.Format)
		assert.Equal(t, []string{"project.json", "*.deps.json"}, captured.Patterns)
		assert.Equal(t, []string{"node_modules"}, captured.Ignore)
		assert.Equal(t, ".repoutil/cache", captured.CacheDir)
		assert.Same(t, out, captured.Output)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.VerifyOptions
		mock := &mockApp{
			verifyFunc: func(_ context.Context, opts app.VerifyOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"verify"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", captured.Root)
		assert.Equal(t, "text", captured.Format)
		assert.Empty(t, captured.ConfigPath)
		assert.Empty(t, captured.Patterns)
	})

	t.Run("returns app errors", func(t *testing.T) {
		mock := &mockApp{
			verifyFunc: func(context.Context, app.VerifyOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"verify"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		mock := &mockApp{
			verifyFunc: func(context.Context, app.VerifyOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"verify", "a", "b"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Watch(t *testing.T) {
	var captured app.WatchOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "repo", "--debounce", "1s", "-p", "*.json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "repo", captured.Root)
	assert.Equal(t, time.Second, captured.Debounce)
	assert.Equal(t, []string{"*.json"}, captured.Patterns)
	assert.Empty(t, captured.Format)
}

func TestCommands_WatchDefaultDebounce(t *testing.T) {
	var captured app.WatchOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, 200*time.Millisecond, captured.Debounce)
}

func TestCommands_Version(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}} {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs(args)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t,
			"repoutil version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
			buf.String())
	}
}
