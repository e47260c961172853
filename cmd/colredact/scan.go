package colredact

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/redactyl/colredact/internal/classify"
	"github.com/redactyl/colredact/internal/report"
	"github.com/redactyl/colredact/internal/tabular"
)

func newScanCmd(g *globalFlags) *cobra.Command {
	var failOnFlagged bool
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "List columns whose names suggest personal or sensitive information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(g, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()
			return runScan(cmd, e, args[0], failOnFlagged)
		},
	}
	cmd.Flags().BoolVar(&failOnFlagged, "fail-on-flagged", false, "exit with status 1 when any column is flagged")
	return cmd
}

func runScan(cmd *cobra.Command, e *env, path string, failOnFlagged bool) error {
	log := e.log.WithComponent("scan")
	t, _, err := tabular.Load(path, e.tabular)
	if err != nil {
		return err
	}
	log.Info("file loaded", zap.String("file", path), zap.Int("columns", t.NumCols()), zap.Int("rows", t.NumRows()))

	res := classify.Scan(t, e.rules)
	for _, m := range res.Matches() {
		log.Debug("column flagged",
			zap.String("column", m.Column),
			zap.String("rule", m.RuleID),
			zap.String("pattern", m.Pattern),
		)
	}

	out := cmd.OutOrStdout()
	opts := report.PrintOptions{NoColor: e.noColor, File: path, Columns: t.NumCols(), Rows: t.NumRows()}
	switch e.format {
	case "json":
		if err := report.WriteJSON(out, report.NewScanReport(path, t.Columns(), t.NumRows(), res)); err != nil {
			return err
		}
	case "text":
		report.PrintText(out, res, opts)
	default:
		if err := report.PrintTable(out, res, opts); err != nil {
			return err
		}
	}

	if failOnFlagged && res.Len() > 0 {
		return exitError{code: 1}
	}
	return nil
}
