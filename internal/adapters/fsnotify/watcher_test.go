package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_FiresOnWatchedFile(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "selected_webcasts.json")
	require.NoError(t, os.WriteFile(watched, []byte("[]"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 8)
	require.NoError(t, w.Watch([]string{watched}, func(path string) {
		changes <- path
	}))

	require.NoError(t, os.WriteFile(watched, []byte(`[{"webcast_id": "1"}]`), 0644))

	select {
	case path := <-changes:
		require.Equal(t, watched, path)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event for watched file")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.json")
	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(watched, []byte("[]"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 8)
	require.NoError(t, w.Watch([]string{watched}, func(path string) {
		changes <- path
	}))

	require.NoError(t, os.WriteFile(other, []byte("[]"), 0644))

	select {
	case path := <-changes:
		t.Fatalf("unexpected event for %s", path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopTwice(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
