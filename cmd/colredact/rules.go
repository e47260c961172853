package colredact

import (
	"github.com/spf13/cobra"

	"github.com/redactyl/colredact/internal/report"
)

func newRulesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the active rules in precedence order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(g, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if e.format == "json" {
				return report.WriteRulesJSON(cmd.OutOrStdout(), e.rules)
			}
			return report.PrintRules(cmd.OutOrStdout(), e.rules)
		},
	}
}
