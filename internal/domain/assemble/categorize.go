// Package assemble joins the five extracted source files into the flat
// Questions and Opinions dataset. Participants of a hearing are the judges
// named in both the press announcement and the judgment; each participant
// becomes one record carrying their question (if any) and opinion (if any).
package assemble

import (
	"strings"

	"github.com/lacour/qando/internal/domain/dataset"
)

// titleLabels maps title keywords to labels in priority order. "PARTLY"
// outranks "DISSENTING" so that "PARTLY DISSENTING OPINION" labels as
// PARTLY, not DISSENTING.
var titleLabels = []struct {
	keyword string
	label   dataset.OpinionType
}{
	{"PARTLY", dataset.OpinionPartly},
	{"DISSENTING", dataset.OpinionDissenting},
	{"CONCURRING", dataset.OpinionConcurring},
	{"OPINION", dataset.OpinionMajority},
}

// Categorize derives the opinion_type label from an opinion's title by
// case-insensitive keyword match. Titles matching no keyword label UNKNOWN.
func Categorize(title string) dataset.OpinionType {
	upper := strings.ToUpper(title)
	for _, tl := range titleLabels {
		if strings.Contains(upper, tl.keyword) {
			return tl.label
		}
	}
	return dataset.OpinionUnknown
}
