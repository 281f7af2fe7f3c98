// Package dataset defines the Questions and Opinions record schema and its
// JSON encodings. A record pairs one judge's hearing question with the opinion
// the same judge wrote (or did not write) in the resulting judgment.
//
// The generation pipeline emits datasets in two pandas orientations: a plain
// array of record objects, and the column-oriented object that to_json
// produces by default. DecodeRecords accepts both; EncodeRecords always
// writes the array form.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// OpinionType is the label assigned to an opinion during dataset assembly,
// derived from the opinion's title.
type OpinionType string

const (
	OpinionPartly     OpinionType = "PARTLY"
	OpinionDissenting OpinionType = "DISSENTING"
	OpinionConcurring OpinionType = "CONCURRING"
	OpinionMajority   OpinionType = "OPINION"
	OpinionUnknown    OpinionType = "UNKNOWN"

	// OpinionNone marks records where the judge wrote no opinion.
	OpinionNone OpinionType = ""
)

// IsValid reports whether t is one of the five assembly labels.
// OpinionNone is not a valid label — it is the absence of one.
func (t OpinionType) IsValid() bool {
	switch t {
	case OpinionPartly, OpinionDissenting, OpinionConcurring, OpinionMajority, OpinionUnknown:
		return true
	}
	return false
}

// ID is a webcast or case identifier. Upstream files carry these as either
// JSON strings or bare numbers depending on which tool produced them, so ID
// decodes from both and always encodes as a string.
type ID string

// UnmarshalJSON accepts "3156" and 3156 interchangeably.
func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Opinion is a (title, body) pair. The pipeline emits it as a two-element
// array; hand-edited files sometimes use an object with title/text keys.
// Both decode; the array form is canonical on encode.
type Opinion struct {
	Title string
	Text  string
}

// IsZero reports whether the opinion carries no content.
func (o Opinion) IsZero() bool {
	return o.Title == "" && o.Text == ""
}

// UnmarshalJSON accepts ["title", "body"...] (extra elements join into the
// body) and {"title": ..., "text": ...}.
func (o *Opinion) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*o = Opinion{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var parts []string
		if err := json.Unmarshal(trimmed, &parts); err != nil {
			return fmt.Errorf("opinion array: %w", err)
		}
		if len(parts) == 0 {
			*o = Opinion{}
			return nil
		}
		o.Title = parts[0]
		o.Text = strings.Join(parts[1:], "\n")
		return nil
	case '{':
		var obj struct {
			Title string `json:"title"`
			Text  string `json:"text"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return fmt.Errorf("opinion object: %w", err)
		}
		o.Title = obj.Title
		o.Text = obj.Text
		return nil
	case '"':
		// A lone string is a title-less body (seen in early pipeline runs).
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*o = Opinion{Text: s}
		return nil
	}
	return fmt.Errorf("opinion must be an array, object, or string, got %s", preview(trimmed))
}

// MarshalJSON encodes the canonical two-element array form. A zero opinion
// encodes as an empty array.
func (o Opinion) MarshalJSON() ([]byte, error) {
	if o.IsZero() {
		return []byte("[]"), nil
	}
	return json.Marshal([]string{o.Title, o.Text})
}

// Record is one judge's question/opinion pairing for one hearing.
type Record struct {
	WebcastID   ID          `json:"webcast_id"`
	Name        string      `json:"name"`
	HasQuestion bool        `json:"has_question"`
	HasOpinion  bool        `json:"has_opinion"`
	Language    string      `json:"language"`
	Question    string      `json:"question"`
	CaseID      ID          `json:"case_id"`
	Opinion     Opinion     `json:"opinion"`
	OpinionType OpinionType `json:"opinion_type"`
}

// Key returns the (webcast_id, name) pair that uniquely identifies a record
// within a dataset.
func (r Record) Key() string {
	return string(r.WebcastID) + "\x00" + r.Name
}

// DecodeRecords reads a full dataset from r. It detects the orientation from
// the first byte: '[' is an array of records, '{' is the column-oriented
// object pandas to_json emits ({"webcast_id": {"0": ...}, ...}).
func DecodeRecords(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	switch trimmed[0] {
	case '[':
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode record array: %w", err)
		}
		return records, nil
	case '{':
		return decodeColumns(trimmed)
	}
	return nil, fmt.Errorf("dataset must be a JSON array or object, got %s", preview(trimmed))
}

// decodeColumns reconstructs records from the column-oriented form. Row keys
// are pandas row labels ("0", "1", ...); rows order by their integer value.
func decodeColumns(data []byte) ([]Record, error) {
	var columns map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("decode column object: %w", err)
	}

	anchor, ok := columns["webcast_id"]
	if !ok {
		return nil, fmt.Errorf("column object has no webcast_id column")
	}

	rowKeys := make([]string, 0, len(anchor))
	for k := range anchor {
		rowKeys = append(rowKeys, k)
	}
	sort.Slice(rowKeys, func(i, j int) bool {
		a, errA := strconv.Atoi(rowKeys[i])
		b, errB := strconv.Atoi(rowKeys[j])
		if errA != nil || errB != nil {
			return rowKeys[i] < rowKeys[j]
		}
		return a < b
	})

	records := make([]Record, 0, len(rowKeys))
	for _, rk := range rowKeys {
		row := make(map[string]json.RawMessage, len(columns))
		for col, cells := range columns {
			if cell, ok := cells[rk]; ok {
				row[col] = cell
			}
		}
		rowJSON, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", rk, err)
		}
		var rec Record
		if err := json.Unmarshal(rowJSON, &rec); err != nil {
			return nil, fmt.Errorf("row %s: %w", rk, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeRecords writes records to w as an indented JSON array.
func EncodeRecords(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// preview returns a short prefix of data for error messages.
func preview(data []byte) string {
	const max = 24
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
