package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lacour/qando/internal/domain/dataset"
)

func TestFilter_Matches(t *testing.T) {
	rec := dataset.Record{
		WebcastID:   "2547",
		Name:        "SPANO",
		HasQuestion: true,
		HasOpinion:  true,
		Language:    "fr",
		CaseID:      "001-2914",
		OpinionType: dataset.OpinionDissenting,
	}

	yes := true
	no := false

	assert.True(t, Filter{}.Matches(rec), "empty filter matches everything")
	assert.True(t, Filter{WebcastID: "2547", Name: "SPANO"}.Matches(rec))
	assert.True(t, Filter{HasQuestion: &yes, HasOpinion: &yes}.Matches(rec))
	assert.True(t, Filter{Language: "fr", OpinionType: dataset.OpinionDissenting}.Matches(rec))

	assert.False(t, Filter{WebcastID: "9999"}.Matches(rec))
	assert.False(t, Filter{CaseID: "001-0000"}.Matches(rec))
	assert.False(t, Filter{Name: "KŪRIS"}.Matches(rec))
	assert.False(t, Filter{HasQuestion: &no}.Matches(rec))
	assert.False(t, Filter{HasOpinion: &no}.Matches(rec))
	assert.False(t, Filter{Language: "en"}.Matches(rec))
	assert.False(t, Filter{OpinionType: dataset.OpinionConcurring}.Matches(rec))
}
