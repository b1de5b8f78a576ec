package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/styled/lib/extract"
)

func (a *app) extractCommand() *cobra.Command {
	var (
		css bool
		key string
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "List the style elements of a server-rendered HTML page",
		Long: `extract parses an HTML document from a file or standard input and lists
every style element emitted during server rendering, one per line as
"key names... (bytes)". With --css the combined rule text is printed
instead, ready to be served as a stylesheet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			r, name, err := a.input(args)
			if err != nil {
				return err
			}
			defer r.Close()

			blocks, err := extract.Document(r)
			if err != nil {
				return fmt.Errorf("parse %s: %w", name, err)
			}
			if key == "" && a.cfg != nil {
				key = a.cfg.Key
			}

			out := cmd.OutOrStdout()
			matched := 0
			for _, b := range blocks {
				if key != "" && b.Key != key {
					continue
				}
				matched++
				if css {
					fmt.Fprint(out, b.CSS)
					continue
				}
				fmt.Fprintf(out, "%s %s (%d bytes)\n", b.Key, strings.Join(b.Names, " "), len(b.CSS))
			}
			if css && matched > 0 {
				fmt.Fprintln(out)
			}
			logger.Debug("extracted style elements", "input", name, "found", len(blocks), "matched", matched)
			return nil
		},
	}

	cmd.Flags().BoolVar(&css, "css", false, "print the combined CSS instead of a listing")
	cmd.Flags().StringVarP(&key, "key", "k", "", "only include style elements with this key")
	return cmd
}
