package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/lacour/qando/internal/domain/assemble"
	"github.com/lacour/qando/internal/domain/dataset"
)

// LoadSources reads the five source files concurrently. The first decode or
// I/O failure cancels the remaining reads and is returned with its filename.
func LoadSources(ctx context.Context, files SourceFiles) (assemble.Sources, error) {
	var src assemble.Sources

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return readJSON(ctx, files.Webcasts, &src.Webcasts) })
	g.Go(func() error { return readJSON(ctx, files.Questions, &src.Questions) })
	g.Go(func() error { return readJSON(ctx, files.Announced, &src.Announced) })
	g.Go(func() error { return readJSON(ctx, files.Reported, &src.Reported) })
	g.Go(func() error { return readJSON(ctx, files.Opinions, &src.Opinions) })

	if err := g.Wait(); err != nil {
		return assemble.Sources{}, err
	}
	return src, nil
}

// readJSON decodes one source file into out (a pointer to a record slice).
func readJSON[T any](ctx context.Context, path string, out *[]T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("source %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("source %s: %w", path, err)
	}
	return nil
}

// LoadDatasetFile reads an assembled dataset from disk, accepting both the
// array and column-oriented JSON forms.
func LoadDatasetFile(path string) ([]dataset.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	defer f.Close()

	records, err := dataset.DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return records, nil
}
