package main

import (
	"fmt"
	"os"

	"github.com/mcao2/deckcheck/internal/cli"
)

// Set by ldflags
var version = "dev"

func main() {
	cmd := cli.NewRootCommand(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
