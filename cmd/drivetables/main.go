// Command drivetables merges the tables of the PDF files in a Google Drive
// folder into one Excel workbook.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/custodia-labs/drivetables/internal/adapters/driving/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
