package main

import (
	"os"

	"github.com/darbotlabs/lanton-stubs/internal/cli"
)

// Main is the entry point for the application
// It's exported to make it testable
func Main() int {
	return cli.Execute(cli.NewOmniParserCmd())
}

func main() {
	os.Exit(Main())
}
