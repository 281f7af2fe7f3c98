package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lacour/qando/internal/domain/assemble"
	"github.com/lacour/qando/internal/domain/dataset"
	"github.com/lacour/qando/internal/ports"
)

// BuildSummary is written to .qando/build.json after every successful build.
type BuildSummary struct {
	Records      int       `json:"records"`
	Webcasts     int       `json:"webcasts"`
	WithQuestion int       `json:"with_question"`
	WithOpinion  int       `json:"with_opinion"`
	Violations   int       `json:"violations"`
	BuiltAt      time.Time `json:"built_at"`
	ElapsedMs    int64     `json:"elapsed_ms"`
}

// Builder runs the full pipeline: load sources, join, write the dataset
// file, index it in the store, and record a build summary.
type Builder struct {
	Config *Config
	Paths  *Paths
	Store  ports.Storage
	Log    *zap.SugaredLogger
}

// Build assembles the dataset once. Conformance violations are logged and
// counted but do not fail the build — the validate command reports them.
func (b *Builder) Build(ctx context.Context) (*BuildSummary, error) {
	start := time.Now()

	src, err := LoadSources(ctx, b.Config.Sources)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	b.Log.Infow("sources loaded",
		"webcasts", len(src.Webcasts),
		"questions", len(src.Questions),
		"announced", len(src.Announced),
		"reported", len(src.Reported),
		"opinions", len(src.Opinions),
	)

	records, err := assemble.Join(src, assemble.Options{
		DefaultLanguage: b.Config.DefaultLanguage,
		SkipIncomplete:  b.Config.SkipIncomplete,
	})
	if err != nil {
		return nil, fmt.Errorf("join sources: %w", err)
	}

	violations := dataset.Validate(records)
	for _, v := range violations {
		b.Log.Warnw("conformance violation", "record", v.Index, "field", v.Field, "msg", v.Msg)
	}

	if err := writeDataset(b.Config.Output, records); err != nil {
		return nil, err
	}

	if err := b.Store.SaveDataset(records); err != nil {
		return nil, fmt.Errorf("index dataset: %w", err)
	}

	summary := &BuildSummary{
		Records:    len(records),
		Webcasts:   len(src.Webcasts),
		Violations: len(violations),
		BuiltAt:    start.UTC(),
		ElapsedMs:  time.Since(start).Milliseconds(),
	}
	for _, r := range records {
		if r.HasQuestion {
			summary.WithQuestion++
		}
		if r.HasOpinion {
			summary.WithOpinion++
		}
	}

	if err := writeSummary(b.Paths.Build, summary); err != nil {
		return nil, err
	}

	b.Log.Infow("build complete",
		"records", summary.Records,
		"with_question", summary.WithQuestion,
		"with_opinion", summary.WithOpinion,
		"violations", summary.Violations,
		"elapsed_ms", summary.ElapsedMs,
	)
	return summary, nil
}

// writeDataset writes the assembled records as the canonical array form.
func writeDataset(path string, records []dataset.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset %s: %w", path, err)
	}
	if err := dataset.EncodeRecords(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	return f.Close()
}

// writeSummary persists the build summary JSON.
func writeSummary(path string, s *BuildSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write build summary: %w", err)
	}
	return nil
}

// ReadSummary loads the last build summary. Returns nil, nil when no build
// has run yet.
func ReadSummary(path string) (*BuildSummary, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s BuildSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse build summary: %w", err)
	}
	return &s, nil
}
