// Command sfta analyzes coherent AND/OR fault trees from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/sfta-dev/sfta/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
