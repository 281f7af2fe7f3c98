package dataset

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// EpochMillis is a timestamp serialized as epoch milliseconds, the form
// pandas to_json uses for datetime columns. Decodes to UTC.
type EpochMillis struct {
	time.Time
}

// UnmarshalJSON accepts a bare integer or a quoted one.
func (m *EpochMillis) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		m.Time = time.Time{}
		return nil
	}
	var ms int64
	if err := json.Unmarshal([]byte(s), &ms); err != nil {
		return fmt.Errorf("epoch millis: %w", err)
	}
	m.Time = time.UnixMilli(ms).UTC()
	return nil
}

// MarshalJSON encodes back to epoch milliseconds.
func (m EpochMillis) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(m.UnixMilli())
}

// Webcast is one entry of the selected-webcasts source file. Only the
// identifier participates in assembly; extra fields in the file are ignored.
type Webcast struct {
	WebcastID ID `json:"webcast_id"`
}

// Question is one extracted hearing question: who asked what, in which
// language, at which hearing.
type Question struct {
	WebcastID ID     `json:"webcast_id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	Lang      string `json:"lang"`
}

// AnnouncedJudges lists the bench announced in the press release for a
// hearing, keyed by role (e.g. "president", "judge_3").
type AnnouncedJudges struct {
	WebcastID ID                `json:"webcast_id"`
	Judges    map[string]string `json:"judges"`
}

// Names returns the announced judge names, sorted.
func (a AnnouncedJudges) Names() []string {
	names := make([]string, 0, len(a.Judges))
	for _, n := range a.Judges {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// ReportedJudges lists the bench as reported in the judgment document,
// comma-separated in the source file.
type ReportedJudges struct {
	WebcastID   ID          `json:"webcast_id"`
	Listed      string      `json:"listed"`
	HearingDate EpochMillis `json:"hearing_date"`
}

// Names splits the listed field into individual judge names, sorted.
func (r ReportedJudges) Names() []string {
	var names []string
	for _, n := range strings.Split(r.Listed, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// JudgmentOpinions holds the separate opinions extracted from one judgment,
// keyed by the authoring judge's name.
type JudgmentOpinions struct {
	WebcastID   ID                 `json:"webcast_id"`
	CaseID      ID                 `json:"case_id"`
	Opinions    map[string]Opinion `json:"opinions"`
	HearingDate EpochMillis        `json:"hearing_date"`
}
