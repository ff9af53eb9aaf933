// Command orgsite is the CLI for the meta-pytorch docs site: corpus
// search, the interactive TUI, artifact generation and project cards.
package main

import (
	"fmt"
	"os"

	"github.com/meta-pytorch/orgsite/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
