package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lacour/qando/internal/domain/stats"
)

var statsFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the crosstab, Fisher exact test, and tallies",
	Long:  "Tabulates has_question against has_opinion, runs the two-sided Fisher exact test on the crosstab, and breaks down question languages and opinion labels.",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFile, "file", "f", "", "Read this dataset file instead of the indexed dataset")
}

func runStats(cmd *cobra.Command, args []string) error {
	records, source, err := loadRecords(statsFile)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("dataset %s is empty", source)
	}

	crosstab := stats.Tabulate(records)
	fisher := stats.FisherExact(crosstab)
	tally := stats.TallyRecords(records)

	fmt.Print(formatStats(source, crosstab, fisher, tally))
	return nil
}
