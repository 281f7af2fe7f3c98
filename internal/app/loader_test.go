package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSources lays out a minimal, consistent set of the five source files
// and returns their locations.
func writeSources(t *testing.T, dir string) SourceFiles {
	t.Helper()

	files := map[string]string{
		"selected_webcasts.json": `[{"webcast_id": "2547"}]`,
		"dataset_judge_questions.json": `[
			{"webcast_id": "2547", "name": "SPANO", "text": "What about article 6?", "lang": "fr"}
		]`,
		"judges_from_press.json": `[
			{"webcast_id": "2547", "judges": {"president": "SPANO", "judge_2": "KŪRIS"}}
		]`,
		"judges_from_judgments.json": `[
			{"webcast_id": "2547", "listed": "SPANO,KŪRIS", "hearing_date": 1580860800000}
		]`,
		"opinions_from_judgments.json": `[
			{"webcast_id": "2547", "case_id": "001-2914",
			 "opinions": {"SPANO": ["PARTLY DISSENTING OPINION", "body"]},
			 "hearing_date": 1580860800000}
		]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	return SourceFiles{
		Webcasts:  filepath.Join(dir, "selected_webcasts.json"),
		Questions: filepath.Join(dir, "dataset_judge_questions.json"),
		Announced: filepath.Join(dir, "judges_from_press.json"),
		Reported:  filepath.Join(dir, "judges_from_judgments.json"),
		Opinions:  filepath.Join(dir, "opinions_from_judgments.json"),
	}
}

func TestLoadSources(t *testing.T) {
	files := writeSources(t, t.TempDir())

	src, err := LoadSources(context.Background(), files)
	require.NoError(t, err)

	require.Len(t, src.Webcasts, 1)
	require.Len(t, src.Questions, 1)
	require.Len(t, src.Announced, 1)
	require.Len(t, src.Reported, 1)
	require.Len(t, src.Opinions, 1)

	assert.Equal(t, "SPANO", src.Questions[0].Name)
	assert.Equal(t, []string{"KŪRIS", "SPANO"}, src.Reported[0].Names())
	assert.Contains(t, src.Opinions[0].Opinions, "SPANO")
}

func TestLoadSources_MissingFile(t *testing.T) {
	files := writeSources(t, t.TempDir())
	files.Opinions = filepath.Join(t.TempDir(), "nope.json")

	_, err := LoadSources(context.Background(), files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.json")
}

func TestLoadSources_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	files := writeSources(t, dir)
	require.NoError(t, os.WriteFile(files.Questions, []byte("{not json"), 0644))

	_, err := LoadSources(context.Background(), files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset_judge_questions.json")
}

func TestLoadDatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"webcast_id": "1", "name": "A", "has_question": false, "has_opinion": false,
		 "language": "en", "question": "", "case_id": "c", "opinion": [], "opinion_type": ""}
	]`), 0644))

	records, err := LoadDatasetFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0].Name)

	_, err = LoadDatasetFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
