package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lacour/qando/internal/adapters/bbolt"
	"github.com/lacour/qando/internal/app"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the last build summary and store counts",
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	paths := app.NewPaths(projectRoot())

	summary, err := app.ReadSummary(paths.Build)
	if err != nil {
		return err
	}

	stored := 0
	if _, err := os.Stat(paths.DB); err == nil {
		store, err := bbolt.NewStore(paths.DB)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		stored, err = store.Count()
		store.Close()
		if err != nil {
			return err
		}
	}

	fmt.Print(formatInfo(summary, stored))
	return nil
}
