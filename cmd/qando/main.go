// qando builds, validates, and queries the Questions and Opinions dataset:
// judicial hearing questions paired with the opinions the same judges wrote
// in the resulting judgments.
package main

import (
	"os"

	"github.com/lacour/qando/cmd/qando/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
