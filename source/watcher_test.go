package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatch_DeliversInitialAndUpdatedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "well.las")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := Watch(ctx, path)
	require.NoError(t, err)

	select {
	case text := <-ch:
		require.Equal(t, "v1", text)
	case <-ctx.Done():
		t.Fatal("timed out waiting for initial content")
	}

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))

	for {
		select {
		case text := <-ch:
			if text == "v2" {
				return
			}
			// Intermediate snapshot from a coalesced event burst.
		case <-ctx.Done():
			t.Fatal("timed out waiting for updated content")
		}
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "well.las")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, path)
	require.NoError(t, err)

	<-ch // initial snapshot
	cancel()

	select {
	case _, open := <-ch:
		require.False(t, open, "channel should close after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "well.las"))
	require.Error(t, err)
}
