package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWatcher implements ports.Watcher and lets tests fire change events.
type stubWatcher struct {
	files    []string
	onChange func(string)
	stopped  bool
}

func (s *stubWatcher) Watch(files []string, onChange func(string)) error {
	s.files = files
	s.onChange = onChange
	return nil
}

func (s *stubWatcher) Stop() error {
	s.stopped = true
	return nil
}

func TestWatch_RebuildsOnChange(t *testing.T) {
	b := newTestBuilder(t)
	w := &stubWatcher{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, b, w) }()

	// Wait for the loop to register the watch.
	require.Eventually(t, func() bool { return w.onChange != nil }, time.Second, 10*time.Millisecond)
	assert.Len(t, w.files, 5)

	w.onChange(b.Config.Sources.Webcasts)

	// The debounced rebuild writes the summary.
	require.Eventually(t, func() bool {
		s, err := ReadSummary(b.Paths.Build)
		return err == nil && s != nil && s.Records == 2
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("watch loop did not stop on cancel")
	}
	assert.True(t, w.stopped)
}

func TestWatch_StartFailure(t *testing.T) {
	b := newTestBuilder(t)
	err := Watch(context.Background(), b, failingWatcher{})
	assert.Error(t, err)
}

type failingWatcher struct{}

func (failingWatcher) Watch([]string, func(string)) error { return errors.New("inotify limit") }
func (failingWatcher) Stop() error                        { return nil }
