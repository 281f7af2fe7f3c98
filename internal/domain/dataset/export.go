package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// csvHeader fixes the CSV column order to the schema's field order. The
// opinion pair flattens into two columns.
var csvHeader = []string{
	"webcast_id", "name", "has_question", "has_opinion",
	"language", "question", "case_id", "opinion_title", "opinion_text", "opinion_type",
}

// WriteJSONL writes one record per line.
func WriteJSONL(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// WriteCSV writes records as CSV with a fixed header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		row := []string{
			string(r.WebcastID),
			r.Name,
			strconv.FormatBool(r.HasQuestion),
			strconv.FormatBool(r.HasOpinion),
			r.Language,
			r.Question,
			string(r.CaseID),
			r.Opinion.Title,
			r.Opinion.Text,
			string(r.OpinionType),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
