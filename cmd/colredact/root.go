package colredact

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// globalFlags holds persistent flags shared by every subcommand.
type globalFlags struct {
	config    string
	format    string
	noColor   bool
	rules     string
	enable    string
	disable   string
	logLevel  string
	logFormat string
	verbose   bool
	sheet     string
	delimiter string
}

// exitError carries a process exit code without printing an error message.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// Execute runs the colredact CLI. It should be called by the main package.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	return 0
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "colredact",
		Short:         "Flag and redact privacy-sensitive columns",
		Long:          "colredact flags CSV and spreadsheet columns whose names suggest personal or sensitive information under the Australian and Victorian privacy principles, and writes redacted copies.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.config, "config", "", "config file (default: .colredact.yml, then $XDG_CONFIG_HOME/colredact/config.yml)")
	pf.StringVar(&g.format, "format", "", "output format: table|text|json (default table)")
	pf.BoolVar(&g.noColor, "no-color", false, "disable colorized output")
	pf.StringVar(&g.rules, "rules", "", "YAML file with custom rules layered over the built-in set")
	pf.StringVar(&g.enable, "enable", "", "only use these rules (comma-separated IDs)")
	pf.StringVar(&g.disable, "disable", "", "skip these rules (comma-separated IDs)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug|info|warn|error (default warn)")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: console|json (default console)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "shorthand for --log-level debug")
	pf.StringVar(&g.sheet, "sheet", "", "worksheet to read/write for XLSX files (default first sheet)")
	pf.StringVar(&g.delimiter, "delimiter", "", "CSV field delimiter (default ',' or tab for .tsv)")

	rootCmd.AddCommand(
		newScanCmd(g),
		newRedactCmd(g),
		newRulesCmd(g),
		newClassifyCmd(g),
		newConfigCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the colredact version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "colredact", version)
		},
	}
}
