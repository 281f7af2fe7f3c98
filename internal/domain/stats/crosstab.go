// Package stats computes the dataset's summary statistics: the
// has_question × has_opinion contingency table, the Fisher exact test on it,
// and per-language / per-label tallies.
package stats

import (
	"github.com/lacour/qando/internal/domain/dataset"
)

// Crosstab is the 2×2 contingency table of has_question (rows) against
// has_opinion (columns). Index 0 is false, 1 is true.
type Crosstab [2][2]int

// Tabulate counts records into a crosstab.
func Tabulate(records []dataset.Record) Crosstab {
	var c Crosstab
	for _, r := range records {
		c[boolIdx(r.HasQuestion)][boolIdx(r.HasOpinion)]++
	}
	return c
}

// Total is the number of tabulated records.
func (c Crosstab) Total() int {
	return c[0][0] + c[0][1] + c[1][0] + c[1][1]
}

// Tally is the breakdown of questions by language and opinions by label.
type Tally struct {
	Languages    map[string]int
	OpinionTypes map[dataset.OpinionType]int
}

// TallyRecords counts question languages (question-bearing records only) and
// opinion labels (opinion-bearing records only).
func TallyRecords(records []dataset.Record) Tally {
	t := Tally{
		Languages:    make(map[string]int),
		OpinionTypes: make(map[dataset.OpinionType]int),
	}
	for _, r := range records {
		if r.HasQuestion {
			t.Languages[r.Language]++
		}
		if r.HasOpinion {
			t.OpinionTypes[r.OpinionType]++
		}
	}
	return t
}

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}
