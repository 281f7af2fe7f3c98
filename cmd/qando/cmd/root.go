package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lacour/qando/internal/app"
)

// configFlag overrides the default qando.yaml location.
var configFlag string

var rootCmd = &cobra.Command{
	Use:           "qando",
	Short:         "qando — Questions and Opinions dataset toolkit",
	Long:          "Assemble, validate, query, and analyze the dataset of judicial hearing questions and subsequent written opinions.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// loadConfig reads the configuration named by --config, defaulting to
// qando.yaml in the project root (absent file means defaults).
func loadConfig() (*app.Config, error) {
	path := configFlag
	if path == "" {
		path = app.ConfigFile
	}
	return app.LoadConfig(path)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to qando.yaml (default: ./qando.yaml)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(wipeCmd)
}
