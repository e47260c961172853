package colredact

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redactyl/colredact/internal/classify"
	"github.com/redactyl/colredact/internal/report"
)

func newClassifyCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [column...]",
		Short: "Classify column names given as arguments (or one per line on stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(g, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimSpace(sc.Text()); line != "" {
						names = append(names, line)
					}
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			var matches []classify.Match
			for _, name := range names {
				m, ok := classify.Classify(name, e.rules)
				if !ok {
					if e.format != "json" {
						fmt.Fprintf(out, "%s\t-\n", name)
					}
					continue
				}
				matches = append(matches, m)
				if e.format != "json" {
					fmt.Fprintf(out, "%s\t%s\t%s\n", name, m.RuleID, m.Category)
				}
			}
			if e.format == "json" {
				if matches == nil {
					matches = []classify.Match{}
				}
				return report.WriteJSON(out, matches)
			}
			return nil
		},
	}
	return cmd
}
