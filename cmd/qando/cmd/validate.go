package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lacour/qando/internal/domain/dataset"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset against its conformance properties",
	Long:  "Verifies every record: question fields empty without has_question, opinion fields empty without has_opinion, known opinion_type labels, non-empty identifiers, no duplicate (webcast, judge) pairs.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Validate this dataset file instead of the indexed dataset")
}

func runValidate(cmd *cobra.Command, args []string) error {
	records, source, err := loadRecords(validateFile)
	if err != nil {
		return err
	}

	violations := dataset.Validate(records)
	fmt.Print(formatViolations(source, len(records), violations))

	if len(violations) > 0 {
		return fmt.Errorf("%d violations in %d records", len(violations), len(records))
	}
	return nil
}
