package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lacour/qando/internal/adapters/bbolt"
	"github.com/lacour/qando/internal/app"
	"github.com/lacour/qando/internal/domain/dataset"
	"github.com/lacour/qando/internal/ports"
)

var (
	queryWebcast  string
	queryCase     string
	queryName     string
	queryLang     string
	queryType     string
	queryHasQ     bool
	queryHasO     bool
	queryJSON     bool
	queryFullText bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Look up records in the indexed dataset",
	Long:  "Filters records by webcast, case, judge name, language, opinion label, and the has_question/has_opinion flags. Webcast, case, and name lookups use the store indexes.",
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryWebcast, "webcast", "", "Filter by webcast ID")
	queryCmd.Flags().StringVar(&queryCase, "case", "", "Filter by case ID")
	queryCmd.Flags().StringVar(&queryName, "name", "", "Filter by judge name (exact)")
	queryCmd.Flags().StringVar(&queryLang, "lang", "", "Filter by question language")
	queryCmd.Flags().StringVar(&queryType, "type", "", "Filter by opinion label (PARTLY, DISSENTING, CONCURRING, OPINION, UNKNOWN)")
	queryCmd.Flags().BoolVar(&queryHasQ, "has-question", false, "Only records with (or, =false, without) a question")
	queryCmd.Flags().BoolVar(&queryHasO, "has-opinion", false, "Only records with (or, =false, without) an opinion")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "Emit matching records as JSON")
	queryCmd.Flags().BoolVar(&queryFullText, "full", false, "Print full question and opinion text")
}

func runQuery(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter(cmd)
	if err != nil {
		return err
	}

	paths := app.NewPaths(projectRoot())
	if _, err := os.Stat(paths.DB); err != nil {
		return fmt.Errorf("no indexed dataset; run qando build first")
	}
	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	records, err := store.Query(filter)
	if err != nil {
		return err
	}

	if queryJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	fmt.Print(formatRecords(records, queryFullText))
	return nil
}

// buildFilter translates flags into a ports.Filter. The boolean flags are
// tri-state: unset means unconstrained.
func buildFilter(cmd *cobra.Command) (ports.Filter, error) {
	f := ports.Filter{
		WebcastID: dataset.ID(queryWebcast),
		CaseID:    dataset.ID(queryCase),
		Name:      queryName,
		Language:  queryLang,
	}

	if queryType != "" {
		label := dataset.OpinionType(queryType)
		if !label.IsValid() {
			return f, fmt.Errorf("unknown opinion label %q", queryType)
		}
		f.OpinionType = label
	}

	if cmd.Flags().Changed("has-question") {
		v := queryHasQ
		f.HasQuestion = &v
	}
	if cmd.Flags().Changed("has-opinion") {
		v := queryHasO
		f.HasOpinion = &v
	}
	return f, nil
}
