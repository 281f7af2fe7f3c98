// Package app wires the qando pipeline together: configuration, the
// concurrent source loader, the build orchestrator, and the watch loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the default configuration filename in the project root.
const ConfigFile = "qando.yaml"

// SourceFiles names the five extracted inputs the assembly consumes. The
// defaults match the filenames the generation pipeline emits.
type SourceFiles struct {
	Webcasts  string `yaml:"webcasts"`
	Questions string `yaml:"questions"`
	Announced string `yaml:"announced"`
	Reported  string `yaml:"reported"`
	Opinions  string `yaml:"opinions"`
}

// List returns the five paths in a fixed order.
func (s SourceFiles) List() []string {
	return []string{s.Webcasts, s.Questions, s.Announced, s.Reported, s.Opinions}
}

// Config is the root configuration for qando.
type Config struct {
	Sources SourceFiles `yaml:"sources"`

	// Output is where the assembled dataset JSON is written.
	Output string `yaml:"output"`

	// DefaultLanguage is recorded for participants without a question.
	DefaultLanguage string `yaml:"default_language"`

	// SkipIncomplete drops selected webcasts with missing source rows
	// instead of failing the build.
	SkipIncomplete bool `yaml:"skip_incomplete"`
}

// DefaultConfig returns the configuration used when no qando.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Sources: SourceFiles{
			Webcasts:  "selected_webcasts.json",
			Questions: "dataset_judge_questions.json",
			Announced: "judges_from_press.json",
			Reported:  "judges_from_judgments.json",
			Opinions:  "opinions_from_judgments.json",
		},
		Output:          "dataset_questions_opinions.json",
		DefaultLanguage: "en",
	}
}

// LoadConfig reads the YAML configuration at path. A missing file is not an
// error: the defaults apply unchanged.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadConfigFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromReader decodes a YAML config from r, fills defaults for
// omitted fields, and validates the result. Useful in tests where configs
// are constructed from string literals.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all failures found.
func (c *Config) Validate() error {
	var errs []error

	check := func(field, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", field))
		}
	}
	check("sources.webcasts", c.Sources.Webcasts)
	check("sources.questions", c.Sources.Questions)
	check("sources.announced", c.Sources.Announced)
	check("sources.reported", c.Sources.Reported)
	check("sources.opinions", c.Sources.Opinions)
	check("output", c.Output)

	seen := make(map[string]string, 5)
	for _, pair := range []struct{ field, path string }{
		{"sources.webcasts", c.Sources.Webcasts},
		{"sources.questions", c.Sources.Questions},
		{"sources.announced", c.Sources.Announced},
		{"sources.reported", c.Sources.Reported},
		{"sources.opinions", c.Sources.Opinions},
	} {
		if pair.path == "" {
			continue
		}
		if prev, dup := seen[pair.path]; dup {
			errs = append(errs, fmt.Errorf("%s and %s point at the same file %q", prev, pair.field, pair.path))
		}
		seen[pair.path] = pair.field
	}

	for _, src := range c.Sources.List() {
		if src != "" && src == c.Output {
			errs = append(errs, fmt.Errorf("output %q collides with a source file", c.Output))
		}
	}

	return errors.Join(errs...)
}
