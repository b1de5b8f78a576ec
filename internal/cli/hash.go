package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/styled"
)

func (a *app) hashCommand() *cobra.Command {
	var (
		label string
		key   string
	)

	cmd := &cobra.Command{
		Use:   "hash [file]",
		Short: "Print the class name and compiled rules for a style fragment",
		Long: `hash reads a style fragment (declarations, nested blocks and at-rules)
from a file or standard input and prints the class name a component with
those styles would receive, followed by the compiled rules.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			r, name, err := a.input(args)
			if err != nil {
				return err
			}
			defer r.Close()

			data, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}

			opts := a.cfg.ContextOptions()
			if key != "" {
				opts.Key = key
			}
			rc, err := styled.NewContext(opts)
			if err != nil {
				return err
			}

			chain := []any{string(data)}
			if label != "" {
				chain = append([]any{"label:" + label + ";"}, chain...)
			}
			s := rc.Serialize(chain, styled.Props{styled.ThemeProp: a.cfg.ThemeValue()})
			_, inserted := rc.Insert(s, false)
			logger.Debug("serialized", "input", name, "name", s.Name, "inserted", strings.Join(inserted, ","))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, rc.Key()+"-"+s.Name)
			for _, rule := range rc.Sheet().Rules() {
				fmt.Fprintln(out, rule)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "label appended to the class name")
	cmd.Flags().StringVarP(&key, "key", "k", "", "class name prefix (overrides the config file)")
	return cmd
}
