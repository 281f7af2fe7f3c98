package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "qando.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "selected_webcasts.json", cfg.Sources.Webcasts)
	assert.Equal(t, "en", cfg.DefaultLanguage)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qando.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sources:
  webcasts: data/webcasts.json
  questions: data/questions.json
  announced: data/announced.json
  reported: data/reported.json
  opinions: data/opinions.json
output: out/dataset.json
default_language: fr
skip_incomplete: true
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data/webcasts.json", cfg.Sources.Webcasts)
	assert.Equal(t, "out/dataset.json", cfg.Output)
	assert.Equal(t, "fr", cfg.DefaultLanguage)
	assert.True(t, cfg.SkipIncomplete)
}

func TestLoadConfigFromReader_PartialOverride(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader("output: custom.json\n"))
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.Output)
	// Unset fields keep their defaults.
	assert.Equal(t, "dataset_judge_questions.json", cfg.Sources.Questions)
}

func TestLoadConfigFromReader_UnknownKey(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("outputs: typo.json\n"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Sources.Webcasts = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sources.webcasts")

	cfg = DefaultConfig()
	cfg.Sources.Reported = cfg.Sources.Announced
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same file")

	cfg = DefaultConfig()
	cfg.Output = cfg.Sources.Opinions
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides")
}
