package app

import (
	"context"
	"time"

	"github.com/lacour/qando/internal/ports"
)

// rebuildDelay batches bursts of source changes (pipelines rewrite several
// files back to back) into a single rebuild.
const rebuildDelay = 500 * time.Millisecond

// Watch rebuilds the dataset whenever one of the source files changes, until
// ctx is cancelled. Rebuild failures are logged, not fatal: a half-written
// source file fixes itself on the next change event.
func Watch(ctx context.Context, b *Builder, w ports.Watcher) error {
	changed := make(chan string, 16)
	err := w.Watch(b.Config.Sources.List(), func(path string) {
		select {
		case changed <- path:
		default:
			// A rebuild is already pending; drop the event.
		}
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case path := <-changed:
			b.Log.Infow("source changed", "path", path)
			if timer == nil {
				timer = time.NewTimer(rebuildDelay)
			} else {
				timer.Reset(rebuildDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if _, err := b.Build(ctx); err != nil {
				b.Log.Errorw("rebuild failed", "error", err)
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
