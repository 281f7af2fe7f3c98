package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lacour/qando/internal/app"
	"github.com/lacour/qando/internal/domain/dataset"
	"github.com/lacour/qando/internal/domain/stats"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// formatSummary renders a build summary.
//
//	§ 215 records from 43 webcasts → dataset_questions_opinions.json (12ms)
//	  questions: 118 │ opinions: 67 │ violations: 0
func formatSummary(output string, s *app.BuildSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s§ %d records%s from %d webcasts → %s%s%s (%dms)\n",
		colorBold, s.Records, colorReset, s.Webcasts, colorCyan, output, colorReset, s.ElapsedMs))
	sb.WriteString(fmt.Sprintf("  questions: %d │ opinions: %d │ violations: ", s.WithQuestion, s.WithOpinion))
	if s.Violations > 0 {
		sb.WriteString(fmt.Sprintf("%s%d%s\n", colorYellow, s.Violations, colorReset))
	} else {
		sb.WriteString(fmt.Sprintf("%s0%s\n", colorGreen, colorReset))
	}
	return sb.String()
}

// formatViolations renders the validate result, one line per violation.
func formatViolations(source string, total int, vs []dataset.Violation) string {
	if len(vs) == 0 {
		return fmt.Sprintf("%s§ %d records conform%s (%s)\n", colorBold, total, colorReset, source)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s§ %d violations%s in %d records (%s)\n",
		colorBold, len(vs), colorReset, total, source))
	for _, v := range vs {
		sb.WriteString(fmt.Sprintf("  %srecord %d%s %s%s%s: %s\n",
			colorCyan, v.Index, colorReset, colorMagenta, v.Field, colorReset, v.Msg))
	}
	return sb.String()
}

// formatStats renders the crosstab, Fisher test, and tallies.
func formatStats(source string, c stats.Crosstab, f stats.FisherResult, t stats.Tally) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s§ %d records%s (%s)\n\n", colorBold, c.Total(), colorReset, source))

	sb.WriteString(fmt.Sprintf("  %shas_question × has_opinion%s\n", colorBold, colorReset))
	sb.WriteString(fmt.Sprintf("  %s            opinion=no  opinion=yes%s\n", colorGray, colorReset))
	sb.WriteString(fmt.Sprintf("  question=no  %9d  %11d\n", c[0][0], c[0][1]))
	sb.WriteString(fmt.Sprintf("  question=yes %9d  %11d\n\n", c[1][0], c[1][1]))

	sb.WriteString(fmt.Sprintf("  %sFisher exact (two-sided)%s\n", colorBold, colorReset))
	sb.WriteString(fmt.Sprintf("  odds ratio: %10.8f\n", f.OddsRatio))
	sb.WriteString(fmt.Sprintf("  p-value:    %10.8f\n\n", f.P))

	sb.WriteString(fmt.Sprintf("  %squestion languages%s   %s\n", colorBold, colorReset, formatCounts(t.Languages)))
	labels := make(map[string]int, len(t.OpinionTypes))
	for k, v := range t.OpinionTypes {
		labels[string(k)] = v
	}
	sb.WriteString(fmt.Sprintf("  %sopinion labels%s       %s\n", colorBold, colorReset, formatCounts(labels)))
	return sb.String()
}

// formatCounts renders a count map as "key:n key:n", descending by count.
func formatCounts(m map[string]int) string {
	type kv struct {
		k string
		n int
	}
	pairs := make([]kv, 0, len(m))
	for k, n := range m {
		pairs = append(pairs, kv{k, n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].n != pairs[j].n {
			return pairs[i].n > pairs[j].n
		}
		return pairs[i].k < pairs[j].k
	})

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s%s%s:%d", colorGreen, p.k, colorReset, p.n)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s(none)%s", colorGray, colorReset)
	}
	return strings.Join(parts, " ")
}

// formatRecords renders query hits, one line per record unless full text is
// requested.
//
//	§ 3 records
//	  2547/2914: KŪRIS  Q(fr)  DISSENTING
func formatRecords(records []dataset.Record, full bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s§ %d records%s\n", colorBold, len(records), colorReset))

	for _, r := range records {
		sb.WriteString(fmt.Sprintf("  %s%s/%s%s: %s", colorCyan, r.WebcastID, r.CaseID, colorReset, r.Name))
		if r.HasQuestion {
			sb.WriteString(fmt.Sprintf("  %sQ(%s)%s", colorGreen, r.Language, colorReset))
		}
		if r.HasOpinion {
			sb.WriteString(fmt.Sprintf("  %s%s%s", colorMagenta, r.OpinionType, colorReset))
		}
		sb.WriteString("\n")

		if full {
			if r.HasQuestion {
				sb.WriteString(fmt.Sprintf("    %squestion:%s %s\n", colorGray, colorReset, r.Question))
			}
			if r.HasOpinion {
				sb.WriteString(fmt.Sprintf("    %sopinion:%s  %s\n", colorGray, colorReset, r.Opinion.Title))
			}
		}
	}
	return sb.String()
}

// formatInfo renders the last build summary and store count.
func formatInfo(s *app.BuildSummary, stored int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s§ qando%s\n", colorBold, colorReset))
	sb.WriteString(fmt.Sprintf("  Indexed:    %d records\n", stored))
	if s == nil {
		sb.WriteString(fmt.Sprintf("  Last build: %s(none)%s\n", colorGray, colorReset))
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("  Last build: %s (%dms)\n", s.BuiltAt.Format("2006-01-02 15:04:05 MST"), s.ElapsedMs))
	sb.WriteString(fmt.Sprintf("  Webcasts:   %d\n", s.Webcasts))
	sb.WriteString(fmt.Sprintf("  Questions:  %d\n", s.WithQuestion))
	sb.WriteString(fmt.Sprintf("  Opinions:   %d\n", s.WithOpinion))
	if s.Violations > 0 {
		sb.WriteString(fmt.Sprintf("  Violations: %s%d%s\n", colorYellow, s.Violations, colorReset))
	}
	return sb.String()
}
