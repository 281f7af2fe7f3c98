package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lacour/qando/internal/adapters/bbolt"
	"github.com/lacour/qando/internal/app"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble the dataset from the extracted source files",
	Long:  "Joins the five source files (webcasts, questions, announced and reported judges, opinions) into the flat dataset, writes the dataset JSON, and indexes it locally.",
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	builder, cleanup, err := newBuilder()
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := builder.Build(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Print(formatSummary(builder.Config.Output, summary))
	return nil
}

// newBuilder wires config, paths, logger, and store into a Builder. The
// returned cleanup closes the store and flushes the log.
func newBuilder() (*app.Builder, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	paths := app.NewPaths(projectRoot())
	if err := paths.EnsureDirs(); err != nil {
		return nil, nil, fmt.Errorf("create .qando dirs: %w", err)
	}

	log, err := app.NewLogger(paths.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	builder := &app.Builder{
		Config: cfg,
		Paths:  paths,
		Store:  store,
		Log:    log,
	}
	cleanup := func() {
		store.Close()
		log.Sync()
	}
	return builder, cleanup, nil
}
