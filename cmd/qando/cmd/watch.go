package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lacour/qando/internal/adapters/fsnotify"
	"github.com/lacour/qando/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the dataset whenever a source file changes",
	Long:  "Builds once, then watches the five source files and rebuilds on change until interrupted.",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	builder, cleanup, err := newBuilder()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := builder.Build(ctx)
	if err != nil {
		return err
	}
	fmt.Print(formatSummary(builder.Config.Output, summary))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	fmt.Println("§ watching sources (ctrl-c to stop)")
	if err := app.Watch(ctx, builder, watcher); !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println("§ stopped")
	return nil
}
