package assemble

import (
	"fmt"

	"github.com/lacour/qando/internal/domain/dataset"
)

// DefaultLanguage is recorded for participants who asked no question, so the
// language column is never empty for question-less records downstream.
const DefaultLanguage = "en"

// Sources holds the five loaded source files.
type Sources struct {
	Webcasts  []dataset.Webcast
	Questions []dataset.Question
	Announced []dataset.AnnouncedJudges
	Reported  []dataset.ReportedJudges
	Opinions  []dataset.JudgmentOpinions
}

// Options tunes the join.
type Options struct {
	// DefaultLanguage overrides the language recorded for question-less
	// participants. Empty means DefaultLanguage.
	DefaultLanguage string

	// SkipIncomplete drops selected webcasts that lack an announcement,
	// judgment bench, or opinions row instead of failing the whole join.
	SkipIncomplete bool
}

// Join builds one record per hearing participant across all selected
// webcasts. Participants are the intersection of announced and reported
// judges; they iterate in sorted name order so output is deterministic.
//
// A selected webcast missing its announced, reported, or opinions row is an
// error unless opts.SkipIncomplete is set.
func Join(src Sources, opts Options) ([]dataset.Record, error) {
	lang := opts.DefaultLanguage
	if lang == "" {
		lang = DefaultLanguage
	}

	announced := make(map[dataset.ID]dataset.AnnouncedJudges, len(src.Announced))
	for _, a := range src.Announced {
		announced[a.WebcastID] = a
	}
	reported := make(map[dataset.ID]dataset.ReportedJudges, len(src.Reported))
	for _, r := range src.Reported {
		reported[r.WebcastID] = r
	}
	opinions := make(map[dataset.ID]dataset.JudgmentOpinions, len(src.Opinions))
	for _, o := range src.Opinions {
		opinions[o.WebcastID] = o
	}
	questions := make(map[dataset.ID][]dataset.Question, len(src.Questions))
	for _, q := range src.Questions {
		questions[q.WebcastID] = append(questions[q.WebcastID], q)
	}

	var records []dataset.Record
	for _, w := range src.Webcasts {
		wid := w.WebcastID

		ann, okA := announced[wid]
		rep, okR := reported[wid]
		ops, okO := opinions[wid]
		if !okA || !okR || !okO {
			if opts.SkipIncomplete {
				continue
			}
			return nil, fmt.Errorf("webcast %s: missing %s row", wid, missingRow(okA, okR, okO))
		}

		for _, p := range participants(ann, rep) {
			rec := dataset.Record{
				WebcastID: wid,
				Name:      p,
				Language:  lang,
				CaseID:    ops.CaseID,
			}

			for _, q := range questions[wid] {
				if q.Name == p {
					rec.HasQuestion = true
					rec.Question = q.Text
					if q.Lang != "" {
						rec.Language = q.Lang
					}
					break
				}
			}

			if op, ok := ops.Opinions[p]; ok {
				rec.HasOpinion = true
				rec.Opinion = op
				rec.OpinionType = Categorize(op.Title)
			}

			records = append(records, rec)
		}
	}
	return records, nil
}

// participants intersects the announced and reported benches. Sorted, since
// AnnouncedJudges.Names is.
func participants(ann dataset.AnnouncedJudges, rep dataset.ReportedJudges) []string {
	onBench := make(map[string]bool)
	for _, n := range rep.Names() {
		onBench[n] = true
	}

	var both []string
	for _, n := range ann.Names() {
		if onBench[n] {
			both = append(both, n)
		}
	}
	return both
}

// missingRow names which join side is absent, for error messages.
func missingRow(okA, okR, okO bool) string {
	switch {
	case !okA:
		return "announced judges"
	case !okR:
		return "reported judges"
	default:
		return "opinions"
	}
}
