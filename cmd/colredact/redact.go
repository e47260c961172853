package colredact

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/redactyl/colredact/internal/classify"
	"github.com/redactyl/colredact/internal/redact"
	"github.com/redactyl/colredact/internal/report"
	"github.com/redactyl/colredact/internal/tabular"
)

type redactFlags struct {
	columns    []string
	allFlagged bool
	output     string
	outputDir  string
	dryRun     bool
}

func newRedactCmd(g *globalFlags) *cobra.Command {
	f := &redactFlags{}
	cmd := &cobra.Command{
		Use:   "redact <file>",
		Short: "Write a copy of a file with selected columns masked",
		Long: `Write a copy of a file with every cell of the selected columns replaced by ` + redact.MaskToken + `.

Columns are chosen with --columns (names or globs such as "*_id") and/or
--all-flagged. With neither flag, every flagged column is redacted. The copy
is written as <name>_redacted.<ext>, or <name>_reviewed.<ext> when no column
was flagged or redacted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(g, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()
			if !cmd.Flags().Changed("columns") && !f.allFlagged {
				f.allFlagged = true
			}
			return runRedact(cmd, e, args[0], f)
		},
	}
	cmd.Flags().StringSliceVar(&f.columns, "columns", nil, "columns to redact (comma-separated names or globs)")
	cmd.Flags().BoolVar(&f.allFlagged, "all-flagged", false, "redact every column flagged by the rules")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default <name>_redacted.<ext> next to the input)")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "directory for the output file")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "show what would be redacted without writing")
	return cmd
}

func runRedact(cmd *cobra.Command, e *env, src string, f *redactFlags) error {
	log := e.log.WithComponent("redact")
	t, format, err := tabular.Load(src, e.tabular)
	if err != nil {
		return err
	}
	res := classify.Scan(t, e.rules)

	names, unmatched, err := redact.Select(t, res, f.columns, f.allFlagged)
	if err != nil {
		return err
	}
	for _, sel := range unmatched {
		log.Warn("selection matched no column", zap.String("selector", sel))
	}

	dst := f.output
	if dst == "" {
		dir := f.outputDir
		if dir == "" {
			dir = e.outputDir
		}
		dst = tabular.OutputPath(src, dir, res.Len() > 0 || len(names) > 0)
	}
	if same, _ := samePath(src, dst); same {
		return fmt.Errorf("refusing to overwrite input file %s", src)
	}
	outFormat := format
	if f.output != "" {
		if outFormat, err = tabular.DetectFormat(dst); err != nil {
			return err
		}
	}

	summary := report.Redaction{Source: src, Output: dst, Columns: names, Rows: t.NumRows(), DryRun: f.dryRun}
	if summary.Columns == nil {
		summary.Columns = []string{}
	}
	if !f.dryRun {
		out := redact.Columns(t, names)
		if err := tabular.Save(dst, out, outFormat, e.tabular); err != nil {
			return err
		}
		log.Info("redacted copy written",
			zap.String("output", dst),
			zap.Strings("columns", names),
			zap.Int("rows", t.NumRows()),
		)
	}

	if e.format == "json" {
		return report.WriteJSON(cmd.OutOrStdout(), summary)
	}
	report.PrintRedaction(cmd.OutOrStdout(), summary)
	return nil
}

func samePath(a, b string) (bool, error) {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return aa == bb, nil
}
