// Command hyperstats computes descriptive statistics of a file holding one number per line.
//
//	hyperstats [flags] <file>
//	hyperstats serve [--addr :8080]
package main

import (
	"context"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		return 1
	}

	return 0
}
