package dataset

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONL(t *testing.T) {
	records := []Record{
		{WebcastID: "1", Name: "A", CaseID: "c", Language: "en"},
		{WebcastID: "2", Name: "B", CaseID: "d", Language: "en"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"webcast_id":"1"`)
	assert.Contains(t, lines[1], `"name":"B"`)
}

func TestWriteCSV(t *testing.T) {
	records := []Record{{
		WebcastID:   "2547",
		Name:        "SPANO",
		HasQuestion: true,
		HasOpinion:  true,
		Language:    "fr",
		Question:    "Pourquoi, \"exactement\"?",
		CaseID:      "001-2914",
		Opinion:     Opinion{Title: "DISSENTING OPINION", Text: "multi\nline"},
		OpinionType: OpinionDissenting,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{
		"2547", "SPANO", "true", "true", "fr", `Pourquoi, "exactement"?`,
		"001-2914", "DISSENTING OPINION", "multi\nline", "DISSENTING",
	}, rows[1])
}
