package main

import (
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
)

var printCmd = &cobra.Command{
	Use:   "print [config...]",
	Short: "Print the merged configuration in any supported format",
	Long: `Merge the configuration files in order and print the result as
tailwind.config.js, YAML, JSON or TOML. Use it to convert between formats or
to see what a stack of files amounts to.`,
	RunE: runPrint,
}

func init() {
	f := printCmd.Flags()
	f.StringP("format", "f", "js", "Output format: js|yaml|json|toml")
	f.StringP("output", "o", "", "Write to file instead of stdout (atomic replace)")
}

func runPrint(cmd *cobra.Command, args []string) error {
	format, err := twconfig.ParseFormat(getStringWithFallback("format", "print.format", "js"))
	if err != nil {
		return err
	}

	cfg, err := twconfig.LoadFiles(configPaths(args), loadOptions()...)
	if err != nil {
		return err
	}

	data, err := twconfig.Marshal(cfg, format)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	output := getStringWithFallback("output", "print.output", "")
	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := renameio.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
	}
	return nil
}
