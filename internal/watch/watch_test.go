package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherRunsOnStartAndChange(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "hands.txt")
	require.NoError(t, os.WriteFile(path, []byte("2C 3C 6C 9C AC\n"), 0o600))

	var calls atomic.Int32
	w := &Watcher{
		Path:     path,
		Debounce: 20 * time.Millisecond,
		OnChange: func(context.Context) error {
			calls.Add(1)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	// Unrelated files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("2C 3C 6C 9C AC|KD AS 2C 6D QS\n"), 0o600)
		return calls.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	t.Parallel()
	w := &Watcher{
		Path:     filepath.Join(t.TempDir(), "missing", "hands.txt"),
		OnChange: func(context.Context) error { return nil },
	}
	require.Error(t, w.Run(context.Background()))
}
