package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lacour/qando/internal/domain/dataset"
)

var (
	exportFile   string
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert the dataset to JSONL or CSV",
	Long:  "Writes the dataset in a line-oriented format. The format comes from --format, or from the output filename's extension.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Read this dataset file instead of the indexed dataset")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default: stdout)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: jsonl or csv")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	records, _, err := loadRecords(exportFile)
	if err != nil {
		return err
	}

	if exportOut == "" {
		return writeRecords(os.Stdout, format, records)
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	if err := writeRecords(f, format, records); err != nil {
		f.Close()
		return err
	}
	// Close errors matter here: a full disk surfaces on Close, not Write.
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}

	fmt.Printf("§ %d records exported to %s\n", len(records), exportOut)
	return nil
}

// writeRecords emits records to w in the given format.
func writeRecords(w io.Writer, format string, records []dataset.Record) error {
	switch format {
	case "jsonl":
		return dataset.WriteJSONL(w, records)
	case "csv":
		return dataset.WriteCSV(w, records)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// resolveFormat picks jsonl or csv from the flag, falling back to the output
// extension.
func resolveFormat() (string, error) {
	format := strings.ToLower(exportFormat)
	if format == "" && exportOut != "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(exportOut)), ".")
	}
	switch format {
	case "jsonl", "csv":
		return format, nil
	case "":
		return "", fmt.Errorf("cannot infer format; pass --format jsonl|csv")
	}
	return "", fmt.Errorf("unsupported format %q (want jsonl or csv)", format)
}
