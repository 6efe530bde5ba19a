package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
)

// errIssuesFound fails the command after lint output has been written.
var errIssuesFound = errors.New("lint issues found")

var lintCmd = &cobra.Command{
	Use:   "lint [config...]",
	Short: "Lint tailwind configuration files against the project",
	Long: `Check configurations that load fine but will not behave as intended:
content globs that match nothing, duplicated globs, globs reaching outside the
project and core plugin overrides without effect.`,
	RunE: runLint,
}

func init() {
	f := lintCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|json|markdown")
	f.Bool("print-lines", true, "Show config lines with issues")
	f.Bool("print-linter-name", true, "Show (twconfig/rule) suffix on issues")
}

func runLint(cmd *cobra.Command, args []string) error {
	paths := configPaths(args)
	cfgs, err := loadEach(paths)
	if err != nil {
		return err
	}

	results := make([]*twconfig.LintResult, len(cfgs))
	for i, cfg := range cfgs {
		results[i] = twconfig.Lint(cfg, twconfig.LintOptions{
			Root:   projectRoot(paths[i]),
			Source: paths[i],
		})
	}
	result := twconfig.CombineResults(results...)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := twconfig.DetermineOutputFormat(getStringWithFallback("output-format", "lint.output-format", ""))
		if err := twconfig.WriteOutput(cmd.OutOrStdout(), result, format, buildReportConfig()); err != nil {
			return fmt.Errorf("writing lint output: %w", err)
		}
	}

	// Soft gate: only errors fail unless --strict.
	if getBoolWithFallback("strict", "lint.strict", false) {
		if len(result.Issues) > 0 {
			return errIssuesFound
		}
	} else if result.ErrorCount > 0 {
		return errIssuesFound
	}
	return nil
}
