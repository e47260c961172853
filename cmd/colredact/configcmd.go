package colredact

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/redactyl/colredact/internal/config"
	"github.com/redactyl/colredact/internal/rules"
)

type configInitFlags struct {
	output    string
	force     bool
	preset    string
	disable   string
	format    string
	noColor   bool
	outputDir string
	rules     string
}

func newConfigCmd() *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	f := &configInitFlags{}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .colredact.yml with selected rules and options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, f)
		},
	}
	initCmd.Flags().StringVar(&f.output, "output", ".colredact.yml", "output file path")
	initCmd.Flags().BoolVar(&f.force, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&f.preset, "preset", "all", "rule preset: all | personal | sensitive")
	initCmd.Flags().StringVar(&f.disable, "disable", "", "comma-separated rule IDs to disable")
	initCmd.Flags().StringVar(&f.format, "format", "table", "default output format: table|text|json")
	initCmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable color output by default")
	initCmd.Flags().StringVar(&f.outputDir, "output-dir", "", "default directory for redacted files")
	initCmd.Flags().StringVar(&f.rules, "rules", "", "path to a custom rules file")
	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}

// presets group the built-in rules for config init.
var presets = map[string][]string{
	"personal": {
		rules.IDName, rules.IDDateOfBirth, rules.IDAddress, rules.IDEmail, rules.IDPhone,
		rules.IDTaxFile, rules.IDGovernment, rules.IDFinancial, rules.IDVictorian,
	},
	"sensitive": {
		rules.IDHealth, rules.IDEthnicity, rules.IDReligion, rules.IDPolitical, rules.IDSexuality,
		rules.IDGender, rules.IDCriminal, rules.IDUnion, rules.IDBiometric,
	},
}

func runConfigInit(cmd *cobra.Command, f *configInitFlags) error {
	if _, err := os.Stat(f.output); err == nil && !f.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", f.output)
	}

	var enable string
	switch strings.ToLower(f.preset) {
	case "all", "":
	case "personal", "sensitive":
		enable = strings.Join(presets[strings.ToLower(f.preset)], ",")
	default:
		return fmt.Errorf("unknown preset %q (want all, personal or sensitive)", f.preset)
	}
	if _, err := rules.Default().Select(splitList(enable), splitList(f.disable)); err != nil {
		return err
	}

	fc := config.FileConfig{
		Rules:     optStrPtr(f.rules),
		Enable:    optStrPtr(enable),
		Disable:   optStrPtr(f.disable),
		Format:    strPtr(f.format),
		NoColor:   boolPtr(f.noColor),
		OutputDir: optStrPtr(f.outputDir),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.output, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", f.output)
	return nil
}

func strPtr(s string) *string { return &s }
func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func boolPtr(v bool) *bool { return &v }
