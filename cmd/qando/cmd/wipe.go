package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lacour/qando/internal/adapters/bbolt"
	"github.com/lacour/qando/internal/app"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Clear the indexed dataset and build state",
	Long:  "Deletes the local store's dataset and the last build summary. The assembled dataset file is left untouched.",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	if !wipeForce {
		fmt.Printf("⚠ This will delete all qando data for %s. Continue? [y/N] ", filepath.Base(root))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	paths := app.NewPaths(root)

	if _, err := os.Stat(paths.DB); os.IsNotExist(err) {
		fmt.Println("§ no data to wipe")
		return nil
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if err := store.Wipe(); err != nil {
		store.Close()
		return err
	}
	store.Close()

	if err := os.Remove(paths.Build); err != nil && !os.IsNotExist(err) {
		return err
	}

	fmt.Println("§ dataset index wiped")
	return nil
}
