package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config...]",
	Short: "Check tailwind configuration files",
	Long: `Load every configuration file and report all that fail to parse or
validate. With several files, the merged configuration is summarized as well.`,
	RunE: runValidate,
}

// loadEach loads every file on its own and joins the errors of all failures.
func loadEach(paths []string) ([]*twconfig.BuildConfiguration, error) {
	cfgs := make([]*twconfig.BuildConfiguration, 0, len(paths))
	var errs []error
	for _, path := range paths {
		cfg, err := twconfig.Load(twconfig.FileSource(path), loadOptions()...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cfgs = append(cfgs, cfg)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfgs, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths := configPaths(args)
	cfgs, err := loadEach(paths)
	if err != nil {
		return err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	out := cmd.OutOrStdout()
	useColors := twconfig.ShouldUseColors(getBoolWithFallback("color", "color", false))
	for i, path := range paths {
		fmt.Fprintf(out, "%s %s\n", twconfig.RenderStyle(twconfig.StyleOK, "valid", useColors), path)
		describe(out, cfgs[i])
	}
	if len(cfgs) > 1 {
		fmt.Fprintf(out, "%s\n", twconfig.RenderStyle(twconfig.StyleLocation, "merged", useColors))
		describe(out, twconfig.MergeAll(cfgs...))
	}
	return nil
}

// describe prints a short summary of a configuration.
func describe(w io.Writer, cfg *twconfig.BuildConfiguration) {
	fmt.Fprintf(w, "  content: %s\n", strings.Join(cfg.ContentGlobs, ", "))
	if cfg.ClassPrefix != "" {
		fmt.Fprintf(w, "  prefix: %q\n", cfg.ClassPrefix)
	}

	var disabled []string
	for _, name := range twconfig.CorePlugins() {
		if !cfg.CorePluginEnabled(name) {
			disabled = append(disabled, name)
		}
	}
	if len(disabled) > 0 {
		fmt.Fprintf(w, "  disabled core plugins: %s\n", strings.Join(disabled, ", "))
	}

	for _, p := range cfg.Plugins {
		if p.Path != "" {
			fmt.Fprintf(w, "  plugin: %s (%s, %s)\n", p.Name, p.Source, p.Path)
			continue
		}
		fmt.Fprintf(w, "  plugin: %s (%s)\n", p.Name, p.Source)
	}
}
