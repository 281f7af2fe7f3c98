package dataset

import "fmt"

// Violation is one schema-conformance failure for one record. Index is the
// record's position in the dataset.
type Violation struct {
	Index int
	Field string
	Msg   string
}

func (v Violation) String() string {
	return fmt.Sprintf("record %d: %s: %s", v.Index, v.Field, v.Msg)
}

// Validate checks every record against the dataset's conformance properties
// and returns all violations found. It never mutates records; a nil return
// means the dataset conforms.
//
// Properties checked:
//   - has_question false ⇒ question text absent; true ⇒ question text present
//   - has_opinion false ⇒ opinion and opinion_type absent; true ⇒ both present
//   - opinion_type, when set, is one of the five labels
//   - webcast_id and case_id are non-empty
//   - no two records share (webcast_id, name)
func Validate(records []Record) []Violation {
	var out []Violation
	add := func(i int, field, format string, args ...any) {
		out = append(out, Violation{Index: i, Field: field, Msg: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]int, len(records))

	for i, r := range records {
		if r.WebcastID == "" {
			add(i, "webcast_id", "identifier is empty")
		}
		if r.CaseID == "" {
			add(i, "case_id", "identifier is empty")
		}
		if r.Name == "" {
			add(i, "name", "judge name is empty")
		}

		if r.HasQuestion {
			if r.Question == "" {
				add(i, "question", "has_question is true but question text is empty")
			}
			if r.Language == "" {
				add(i, "language", "has_question is true but language is empty")
			}
		} else if r.Question != "" {
			add(i, "question", "has_question is false but question text is present")
		}

		if r.HasOpinion {
			if r.Opinion.IsZero() {
				add(i, "opinion", "has_opinion is true but opinion is empty")
			}
			if r.OpinionType == OpinionNone {
				add(i, "opinion_type", "has_opinion is true but opinion_type is empty")
			}
		} else {
			if !r.Opinion.IsZero() {
				add(i, "opinion", "has_opinion is false but opinion is present")
			}
			if r.OpinionType != OpinionNone {
				add(i, "opinion_type", "has_opinion is false but opinion_type is %q", r.OpinionType)
			}
		}

		if r.OpinionType != OpinionNone && !r.OpinionType.IsValid() {
			add(i, "opinion_type", "%q is not a known label", r.OpinionType)
		}

		if r.WebcastID != "" && r.Name != "" {
			key := r.Key()
			if prev, dup := seen[key]; dup {
				add(i, "webcast_id", "duplicates record %d (same webcast and judge)", prev)
			} else {
				seen[key] = i
			}
		}
	}

	return out
}
