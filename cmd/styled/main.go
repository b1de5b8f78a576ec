// Command styled inspects content-addressed styles from the command line.
//
// Usage:
//
//	styled hash [file]       print the class name and rules for a style fragment
//	styled extract [file]    list style elements in server-rendered HTML
//	styled version           print version information
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pthm/styled/internal/cli"
)

// Set via ldflags.
var (
	version = "0.1.0"
	commit  string
	date    string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
