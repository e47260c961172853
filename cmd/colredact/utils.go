package colredact

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/redactyl/colredact/internal/config"
	"github.com/redactyl/colredact/internal/logger"
	"github.com/redactyl/colredact/internal/rules"
	"github.com/redactyl/colredact/internal/tabular"
)

// env is the resolved runtime configuration for one command invocation.
type env struct {
	log       *logger.Logger
	rules     rules.RuleSet
	format    string
	noColor   bool
	tabular   tabular.Options
	outputDir string
}

// setup merges flags with config files (CLI > local > global) and builds
// the logger and the active rule set.
func setup(g *globalFlags, out io.Writer, errOut io.Writer) (*env, error) {
	lcfg, gcfg, err := config.Resolve(g.config, ".")
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	level := pickString(g.logLevel, lcfg.LogLevel, gcfg.LogLevel)
	if g.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Config{
		Level:  level,
		Format: pickString(g.logFormat, lcfg.LogFormat, gcfg.LogFormat),
		Output: errOut,
	})
	if err != nil {
		return nil, err
	}

	rs := rules.Default()
	if path := pickString(g.rules, lcfg.Rules, gcfg.Rules); path != "" {
		f, err := rules.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if rs, err = f.Apply(rs); err != nil {
			return nil, fmt.Errorf("rules file %s: %w", path, err)
		}
		log.Debug("custom rules loaded", zap.String("path", path), zap.Int("rules", rs.Len()))
	}
	enable := splitList(pickString(g.enable, lcfg.Enable, gcfg.Enable))
	disable := splitList(pickString(g.disable, lcfg.Disable, gcfg.Disable))
	if len(enable) > 0 || len(disable) > 0 {
		if rs, err = rs.Select(enable, disable); err != nil {
			return nil, err
		}
	}

	format := pickString(g.format, lcfg.Format, gcfg.Format)
	switch format {
	case "":
		format = "table"
	case "table", "text", "json":
	default:
		return nil, fmt.Errorf("unknown format %q (want table, text or json)", format)
	}

	var delim rune
	if d := pickString(g.delimiter, lcfg.Delimiter, gcfg.Delimiter); d != "" {
		if d == `\t` {
			d = "\t"
		}
		r, size := utf8.DecodeRuneInString(d)
		if size != len(d) {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", d)
		}
		delim = r
	}

	return &env{
		log:     log,
		rules:   rs,
		format:  format,
		noColor: pickBool(g.noColor, lcfg.NoColor, gcfg.NoColor) || !isTerminal(out),
		tabular: tabular.Options{
			Delimiter: delim,
			Sheet:     pickString(g.sheet, lcfg.Sheet, gcfg.Sheet),
		},
		outputDir: pickString("", lcfg.OutputDir, gcfg.OutputDir),
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
