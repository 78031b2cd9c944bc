// Command filterctl is the CLI collaborator described in §6.5: one
// subcommand per pipeline stage plus the sample SQL translator.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/brutalist-filter/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
