package cmd

import (
	"fmt"
	"os"

	"github.com/lacour/qando/internal/adapters/bbolt"
	"github.com/lacour/qando/internal/app"
	"github.com/lacour/qando/internal/domain/dataset"
)

// loadRecords resolves the dataset for read-only commands. An explicit file
// wins; otherwise the local store is tried, then the configured dataset
// file. The second return names the source used, for display.
func loadRecords(file string) ([]dataset.Record, string, error) {
	if file != "" {
		records, err := app.LoadDatasetFile(file)
		return records, file, err
	}

	paths := app.NewPaths(projectRoot())
	if _, err := os.Stat(paths.DB); err == nil {
		store, err := bbolt.NewStore(paths.DB)
		if err != nil {
			return nil, "", fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		records, err := store.LoadDataset()
		if err != nil {
			return nil, "", err
		}
		if records != nil {
			return records, "store", nil
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	records, err := app.LoadDatasetFile(cfg.Output)
	if err != nil {
		return nil, "", fmt.Errorf("no indexed dataset; run qando build first (%w)", err)
	}
	return records, cfg.Output, nil
}
