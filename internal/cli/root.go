// Package cli implements the styled command-line interface.
//
// # Commands
//
//   - hash: serialize a style fragment and print its class name and rules
//   - extract: list the style elements of a server-rendered page
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and the same logger receives the
// library's usage warnings.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pthm/styled"
	"github.com/pthm/styled/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information printed by the version command.
// main sets it from ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app holds state shared by all commands of one invocation.
type app struct {
	in         io.Reader
	errOut     io.Writer
	verbose    bool
	configPath string
	cfg        *config.Config
}

// NewRootCommand builds the command tree. in is read when a command is
// given no file argument; logs go to errOut.
func NewRootCommand(in io.Reader, errOut io.Writer) *cobra.Command {
	a := &app{in: in, errOut: errOut}

	root := &cobra.Command{
		Use:           "styled",
		Short:         "Inspect content-addressed styles",
		Long:          `styled hashes style fragments the way components do at render time and extracts emitted style elements from server-rendered HTML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if a.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(a.errOut, level)
			styled.SetLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			if a.configPath != "" {
				cfg, err := config.Load(a.configPath)
				if err != nil {
					return err
				}
				logger.Debug("loaded config", "path", a.configPath, "key", cfg.Key)
				a.cfg = cfg
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(a.hashCommand())
	root.AddCommand(a.extractCommand())
	root.AddCommand(versionCommand())

	return root
}

// Execute runs the CLI with the process's standard streams.
func Execute(ctx context.Context) error {
	root := NewRootCommand(os.Stdin, os.Stderr)
	return root.ExecuteContext(ctx)
}

// input opens the file named by args, or standard input.
func (a *app) input(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(a.in), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, args[0], nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "styled %s\n", version)
			if commit != "" {
				fmt.Fprintf(out, "commit: %s\n", commit)
			}
			if date != "" {
				fmt.Fprintf(out, "built: %s\n", date)
			}
			return nil
		},
	}
}
